package storage

import (
	"context"
	"github.com/minio/minio-go/v7"
	"net/url"
	"strings"
	"time"
)

// ThumbnailSigner hands out presigned GET URLs for objects in one bucket.
type ThumbnailSigner struct {
	client *minio.Client
	bucket string
	ttl    time.Duration
}

func NewThumbnailSigner(client *minio.Client, bucket string, ttl time.Duration) *ThumbnailSigner {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ThumbnailSigner{
		client: client,
		bucket: bucket,
		ttl:    ttl,
	}
}

// SignedURL returns absolute URLs untouched and presigns object keys.
func (s *ThumbnailSigner) SignedURL(ctx context.Context, object string) (string, error) {
	if IsAbsoluteURL(object) {
		return object, nil
	}
	object = strings.TrimPrefix(object, "/")
	u, err := s.client.PresignedGetObject(ctx, s.bucket, object, s.ttl, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func IsAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
