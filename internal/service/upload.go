package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/lib/storage"
	"github.com/deppfellow/portfolio-backend/internal/model"
)

// UploadSigner issues presigned upload URLs.
type UploadSigner interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
}

type UploadService struct {
	signer UploadSigner
}

func NewUploadService(signer UploadSigner) *UploadService {
	return &UploadService{signer: signer}
}

// CreateUploadURL reserves a fresh object key and signs a PUT for it.
// Only the image types in storage.AllowedContentTypes are accepted.
func (s *UploadService) CreateUploadURL(ctx context.Context, payload *model.UploadURLPayload) (*model.UploadURL, error) {
	if !storage.AllowedContentTypes[payload.ContentType] {
		return nil, errs.NewBadRequestError("Invalid file type", true, nil, nil)
	}

	key := storage.NewObjectKey(payload.FileName)

	url, err := s.signer.PresignUpload(ctx, key, payload.ContentType)
	if err != nil {
		return nil, err
	}

	return &model.UploadURL{URL: url, S3ObjectKey: key}, nil
}
