package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"s3 url", "https://bucket.s3.amazonaws.com/4b6f.png", "4b6f.png"},
		{"nested path", "https://cdn.example.com/media/2025/avatar.webp", "avatar.webp"},
		{"query string dropped", "https://cdn.example.com/a.jpeg?v=2", "a.jpeg"},
		{"bare key", "plain-key.png", "plain-key.png"},
		{"empty", "  ", ""},
		{"host with trailing slash", "https://cdn.example.com/", ""},
		{"host only", "https://cdn.example.com", ""},
		{"trailing slash after key", "https://cdn.example.com/media/a.png/", "a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromURL(tt.ref))
		})
	}
}

func TestNewObjectKeyKeepsExtension(t *testing.T) {
	key := NewObjectKey("holiday photo.JPEG")

	assert.True(t, strings.HasSuffix(key, ".JPEG"))
	assert.Len(t, key, 36+len(".JPEG"))
	assert.NotEqual(t, key, NewObjectKey("holiday photo.JPEG"))
}

func TestAllowedContentTypes(t *testing.T) {
	assert.True(t, AllowedContentTypes["image/webp"])
	assert.False(t, AllowedContentTypes["image/gif"])
	assert.False(t, AllowedContentTypes["application/pdf"])
}
