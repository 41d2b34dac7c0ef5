package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"dekora_studio/internal/infrastructure/database"
	"dekora_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const defaultDocumentsBucket = "estimate-documents"

// S3DocumentStore keeps rendered estimate documents in S3 (or any
// S3-compatible store such as minio via S3_ENDPOINT).
//
// Keys are stable per estimate, so storing the same key again overwrites the
// previous object; regeneration never piles up artifacts.
type S3DocumentStore struct {
	client *s3.Client
	bucket string
	region string
	// baseURL overrides the computed object URL (useful behind a CDN or a
	// local endpoint).
	baseURL string
}

var _ interfaces.IDocumentStore = (*S3DocumentStore)(nil)

// ConnectS3DocumentStore creates the store from environment variables:
//   - DOCUMENTS_BUCKET (default: estimate-documents)
//   - S3_ENDPOINT (optional)
//   - DOCUMENTS_BASE_URL (optional)
func ConnectS3DocumentStore() *S3DocumentStore {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create aws config")
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	bucket := os.Getenv("DOCUMENTS_BUCKET")
	if bucket == "" {
		bucket = defaultDocumentsBucket
	}

	return &S3DocumentStore{
		client:  client,
		bucket:  bucket,
		region:  cfg.Region,
		baseURL: strings.TrimSuffix(os.Getenv("DOCUMENTS_BASE_URL"), "/"),
	}
}

func (s *S3DocumentStore) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.objectURL(key), nil
}

func (s *S3DocumentStore) objectURL(key string) string {
	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
