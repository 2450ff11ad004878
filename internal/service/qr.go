package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// BuildTableURL deterministically builds the public ordering URL a table's
// QR code points at. The dev port is only appended in debug mode, matching
// local-server behavior; same inputs always produce the same URL.
func BuildTableURL(scheme, host string, debug bool, code string) string {
	if scheme == "" {
		scheme = "http"
	}
	if host == "" {
		host = "localhost"
	}
	base := fmt.Sprintf("%s://%s", scheme, host)
	if debug {
		base += ":8000"
	}
	return fmt.Sprintf("%s/menu/?table=%s", base, url.QueryEscape(code))
}

// EncodeQR renders the URL as a PNG. The bytes may differ across calls for
// the same URL; only the decoded content is stable.
func EncodeQR(targetURL string) ([]byte, error) {
	png, err := qrcode.Encode(targetURL, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}

//go:generate mockery --name QRStore --output ../mocks
type QRStore interface {
	Put(ctx context.Context, key string, png []byte) error
}

// S3QRStore stores generated QR images in an S3 bucket.
type S3QRStore struct {
	client *s3.Client
	bucket string
}

func NewS3QRStore(client *s3.Client, bucket string) *S3QRStore {
	return &S3QRStore{client: client, bucket: bucket}
}

func (s *S3QRStore) Put(ctx context.Context, key string, png []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(png),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload QR image %s: %w", key, err)
	}
	return nil
}
