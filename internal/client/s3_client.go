package client

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	appConfig "project-task-api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"project-task-api/internal/domain"
)

// Presigned URL lifetimes.
const (
	UploadURLExpiry   = 5 * time.Minute
	DownloadURLExpiry = 15 * time.Minute
)

// S3ClientInterface defines the interface for object storage operations
type S3ClientInterface interface {
	GenerateFileKey(entityType domain.EntityType, fileExt string) (string, error)
	GeneratePresignedUploadURL(ctx context.Context, entityType domain.EntityType, fileName, contentType string) (string, string, error)
	GeneratePresignedDownloadURL(ctx context.Context, key string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	GetFileURL(key string) string
}

// S3Client wraps the AWS S3 client and implements S3ClientInterface
type S3Client struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	region        string
	endpoint      string // set when running against local MinIO
}

// NewS3Client creates a new S3 client
func NewS3Client(cfg *appConfig.S3Config) (*S3Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	var awsCfg aws.Config
	var err error

	// A custom endpoint (local MinIO) needs explicit credentials and a
	// fixed endpoint resolver; otherwise the default credential chain is used.
	if cfg.Endpoint != "" {
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for MinIO endpoint")
		}

		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
			config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{
						URL:               cfg.Endpoint,
						HostnameImmutable: true,
						SigningRegion:     cfg.Region,
					}, nil
				},
			)),
		)
	} else {
		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true // required for MinIO
		}
	})

	return &S3Client{
		client:        s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		endpoint:      cfg.Endpoint,
	}, nil
}

// entityPathSegment maps an entity type to its key path segment
func entityPathSegment(entityType domain.EntityType) (string, error) {
	switch entityType {
	case domain.EntityTypeTask:
		return "tasks", nil
	case domain.EntityTypeMeeting:
		return "meetings", nil
	case domain.EntityTypeProject:
		return "projects", nil
	}
	return "", fmt.Errorf("invalid entity type: %s", entityType)
}

// GenerateFileKey generates a unique object key.
// Format: uploads/{segment}/{year}/{month}/{uuid}_{timestamp}{ext}
func (c *S3Client) GenerateFileKey(entityType domain.EntityType, fileExt string) (string, error) {
	segment, err := entityPathSegment(entityType)
	if err != nil {
		return "", err
	}

	now := time.Now()
	key := fmt.Sprintf("uploads/%s/%s/%s/%s_%d%s",
		segment, now.Format("2006"), now.Format("01"),
		uuid.New().String(), now.Unix(), fileExt)
	return key, nil
}

// GeneratePresignedUploadURL generates a presigned PUT URL and the key the
// object will live under
func (c *S3Client) GeneratePresignedUploadURL(ctx context.Context, entityType domain.EntityType, fileName, contentType string) (string, string, error) {
	fileKey, err := c.GenerateFileKey(entityType, filepath.Ext(fileName))
	if err != nil {
		return "", "", fmt.Errorf("failed to generate file key: %w", err)
	}

	presignedReq, err := c.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(fileKey),
		ContentType: aws.String(contentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = UploadURLExpiry
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return c.rewriteForLocalEndpoint(presignedReq.URL), fileKey, nil
}

// GeneratePresignedDownloadURL generates a presigned GET URL for an object
func (c *S3Client) GeneratePresignedDownloadURL(ctx context.Context, key string) (string, error) {
	presignedReq, err := c.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = DownloadURLExpiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate download URL: %w", err)
	}
	return c.rewriteForLocalEndpoint(presignedReq.URL), nil
}

// DeleteFile deletes an object
func (c *S3Client) DeleteFile(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

// GetFileURL returns the plain (unsigned) URL for an object
func (c *S3Client) GetFileURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpoint, "/"), c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

// rewriteForLocalEndpoint swaps the in-cluster MinIO host for the host the
// browser can actually reach. No-op against real S3.
func (c *S3Client) rewriteForLocalEndpoint(url string) string {
	if c.endpoint == "" {
		return url
	}
	const internalMinIOHost = "minio:9000"
	externalHost := strings.TrimPrefix(strings.TrimPrefix(c.endpoint, "http://"), "https://")
	return strings.Replace(url, internalMinIOHost, externalHost, 1)
}
