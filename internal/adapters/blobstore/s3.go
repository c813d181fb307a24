// Package blobstore uploads documents to S3-compatible object storage and
// hands back the public URL resource payloads reference.
package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/learnhub/admin-console/internal/ports"
)

const defaultContentType = "application/octet-stream"

// Sentinel errors for upload failures.
var (
	ErrInvalidConfig = errors.New("blobstore: invalid configuration")
	ErrEmptyObject   = errors.New("blobstore: object is empty")
	ErrAccessDenied  = errors.New("blobstore: access denied")
	ErrUploadFailed  = errors.New("blobstore: upload failed")
)

// extensions lists preferred extensions where mime.ExtensionsByType is ambiguous or platform dependent.
var extensions = map[string]string{
	"application/pdf":      ".pdf",
	"application/epub+zip": ".epub",
	"image/jpeg":           ".jpg",
	"image/png":            ".png",
	"image/webp":           ".webp",
}

// Config describes the bucket uploads go to.
type Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string

	// Endpoint overrides the AWS endpoint for S3-compatible services.
	Endpoint  string
	PathStyle bool

	// Prefix is prepended to every object key.
	Prefix string
	// PublicURL is the base URL objects are served from; empty derives it from the endpoint.
	PublicURL string
}

func (c Config) validate() error {
	switch {
	case strings.TrimSpace(c.Bucket) == "":
		return fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	case strings.TrimSpace(c.Region) == "":
		return fmt.Errorf("%w: region is required", ErrInvalidConfig)
	case c.AccessKey == "" || c.SecretKey == "":
		return fmt.Errorf("%w: access key and secret key are required", ErrInvalidConfig)
	}
	return nil
}

// S3 implements ports.BlobStore with public-read objects.
type S3 struct {
	client *s3.Client
	cfg    Config
}

var _ ports.BlobStore = (*S3)(nil)

// New creates an S3 blob store.
func New(cfg Config) (*S3, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		},
	}
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return &S3{client: s3.New(s3.Options{}, opts...), cfg: cfg}, nil
}

// Put uploads data under a fresh key and returns its public URL.
func (s *S3) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyObject
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	key := s.buildKey(contentType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", wrapS3Error(err)
	}
	return s.publicURL(key), nil
}

// buildKey returns {prefix}/{uuid}{ext}.
func (s *S3) buildKey(contentType string) string {
	name := uuid.NewString() + extensionFor(contentType)
	prefix := strings.Trim(s.cfg.Prefix, "/ ")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func extensionFor(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ".bin"
	}
	if ext, ok := extensions[mediaType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".bin"
}

func (s *S3) publicURL(key string) string {
	if s.cfg.PublicURL != "" {
		return strings.TrimSuffix(s.cfg.PublicURL, "/") + "/" + key
	}
	if s.cfg.Endpoint != "" {
		endpoint := strings.TrimSuffix(s.cfg.Endpoint, "/")
		if s.cfg.PathStyle {
			return fmt.Sprintf("%s/%s/%s", endpoint, s.cfg.Bucket, key)
		}
		return fmt.Sprintf("%s/%s", endpoint, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

func wrapS3Error(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "Forbidden", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrUploadFailed, err)
}
