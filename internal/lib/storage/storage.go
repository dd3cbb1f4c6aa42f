// Package storage is the gateway to the S3 compatible bucket holding
// uploaded media (profile picture, company logos, project and
// achievement images).
package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

// AllowedContentTypes are the image types accepted for upload.
var AllowedContentTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// Client signs uploads and deletes objects in a single bucket.
type Client struct {
	minio  *minio.Client
	bucket string
	expiry time.Duration
	logger *zerolog.Logger
}

func NewClient(cfg *config.StorageConfig, logger *zerolog.Logger) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating object store client: %w", err)
	}

	expiry := cfg.UploadURLExpiry
	if expiry <= 0 {
		expiry = config.DefaultUploadURLExpiry
	}

	return &Client{
		minio:  mc,
		bucket: cfg.Bucket,
		expiry: expiry,
		logger: logger,
	}, nil
}

// PresignUpload returns a PUT URL valid for the configured expiry. The
// uploader must send the same Content-Type that was signed.
func (c *Client) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	headers := http.Header{}
	headers.Set("Content-Type", contentType)

	u, err := c.minio.PresignHeader(ctx, http.MethodPut, c.bucket, key, c.expiry, url.Values{}, headers)
	if err != nil {
		return "", fmt.Errorf("presigning upload for %s: %w", key, err)
	}

	c.logger.Debug().
		Str("key", key).
		Str("content_type", contentType).
		Dur("expiry", c.expiry).
		Msg("presigned upload url")

	return u.String(), nil
}

// Delete removes an object. Removing a missing key is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.minio.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("deleting object %s: %w", key, err)
	}
	return nil
}

// Ping reports whether the bucket is reachable.
func (c *Client) Ping(ctx context.Context) error {
	ok, err := c.minio.BucketExists(ctx, c.bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %s does not exist", c.bucket)
	}
	return nil
}

// NewObjectKey is a fresh uuid with the extension of the uploaded file name.
func NewObjectKey(fileName string) string {
	return uuid.NewString() + filepath.Ext(fileName)
}

// KeyFromURL derives the storage key of a media reference: its last path segment.
func KeyFromURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	u, err := url.Parse(ref)
	if err != nil {
		if i := strings.LastIndex(ref, "/"); i >= 0 {
			return ref[i+1:]
		}
		return ref
	}

	// A URL without a path names no object.
	p := strings.Trim(u.Path, "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}
