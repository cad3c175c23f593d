package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store keeps avatars in an S3-compatible bucket (MinIO in development).
type S3Store struct {
	client        *s3.Client
	uploader      *manager.Uploader
	bucket        string
	publicBaseURL string
}

type S3Config struct {
	Endpoint      string
	AccessKeyID   string
	SecretKey     string
	Bucket        string
	Region        string
	UseSSL        bool
	PublicBaseURL string
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 store requires endpoint, credentials and bucket")
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	endpointURL := fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		options.BaseEndpoint = aws.String(endpointURL)
		options.UsePathStyle = true
	})

	publicBaseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if publicBaseURL == "" {
		publicBaseURL = endpointURL + "/" + cfg.Bucket
	}

	store := &S3Store{
		client:        client,
		uploader:      manager.NewUploader(client),
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL,
	}
	if err := store.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (store *S3Store) ensureBucket(ctx context.Context) error {
	headCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := store.client.HeadBucket(headCtx, &s3.HeadBucketInput{
		Bucket: aws.String(store.bucket),
	}); err == nil {
		return nil
	}

	if _, err := store.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(store.bucket),
	}); err != nil {
		return fmt.Errorf("create bucket %s: %w", store.bucket, err)
	}

	waiter := s3.NewBucketExistsWaiter(store.client)
	if err := waiter.Wait(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(store.bucket),
	}, 30*time.Second); err != nil {
		return fmt.Errorf("wait for bucket %s: %w", store.bucket, err)
	}
	return nil
}

func (store *S3Store) Upload(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	objectKey := sanitizeKey(key)
	if objectKey == "" {
		return "", fmt.Errorf("invalid avatar key %q", key)
	}

	if _, err := store.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(store.bucket),
		Key:         aws.String(objectKey),
		Body:        content,
		ContentType: aws.String(contentType),
	}); err != nil {
		return "", fmt.Errorf("upload avatar %s: %w", objectKey, err)
	}
	return store.publicBaseURL + "/" + objectKey, nil
}

func (store *S3Store) Remove(ctx context.Context, location string) error {
	objectKey := sanitizeKey(path.Base(location))
	if objectKey == "" {
		return nil
	}
	if _, err := store.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(objectKey),
	}); err != nil {
		return fmt.Errorf("delete avatar %s: %w", objectKey, err)
	}
	return nil
}
