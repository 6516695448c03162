// Package storage stores generated proposal documents. Uploads go to
// S3-compatible object storage when credentials are configured; otherwise
// files land in a local directory so development works without a bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	appconfig "amc-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Store writes document bytes and returns a link the admin UI can open.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// New picks the backend from configuration. Missing S3 credentials fall back
// to local disk with a log line so the degradation is visible.
func New(cfg *appconfig.Config) Store {
	if cfg.Storage.Endpoint != "" && cfg.Storage.AccessKey != "" && cfg.Storage.SecretKey != "" {
		store, err := newS3Store(cfg)
		if err == nil {
			log.Printf("[Storage] Using S3 bucket %s", cfg.Storage.Bucket)
			return store
		}
		log.Printf("[Storage] S3 init failed (%v), falling back to local directory", err)
	}
	log.Printf("[Storage] Using local directory %s", cfg.Storage.LocalDir)
	return &localStore{dir: cfg.Storage.LocalDir}
}

type s3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func newS3Store(cfg *appconfig.Config) (*s3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
	})

	return &s3Store{
		client:        client,
		bucket:        cfg.Storage.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

func (s *s3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

type localStore struct {
	dir string
}

func (l *localStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	path := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return "/documents/" + key, nil
}
