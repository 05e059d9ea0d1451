package client

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"project-task-api/internal/domain"
)

// MockS3Client implements S3ClientInterface for testing without AWS credentials
type MockS3Client struct {
	Bucket string
	Region string

	// Optional function overrides for custom test behavior
	GenerateFileKeyFunc              func(entityType domain.EntityType, fileExt string) (string, error)
	GeneratePresignedUploadURLFunc   func(ctx context.Context, entityType domain.EntityType, fileName, contentType string) (string, string, error)
	GeneratePresignedDownloadURLFunc func(ctx context.Context, key string) (string, error)
	DeleteFileFunc                   func(ctx context.Context, key string) error
	GetFileURLFunc                   func(key string) string

	// DeletedKeys records every key passed to DeleteFile
	DeletedKeys []string
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket: "test-bucket",
		Region: "ap-northeast-2",
	}
}

// GenerateFileKey generates a unique object key
func (m *MockS3Client) GenerateFileKey(entityType domain.EntityType, fileExt string) (string, error) {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(entityType, fileExt)
	}
	segment, err := entityPathSegment(entityType)
	if err != nil {
		return "", err
	}
	now := time.Now()
	return fmt.Sprintf("uploads/%s/%s/%s/%s_%d%s",
		segment, now.Format("2006"), now.Format("01"),
		uuid.New().String(), now.Unix(), fileExt), nil
}

// GeneratePresignedUploadURL generates a mock upload URL
func (m *MockS3Client) GeneratePresignedUploadURL(ctx context.Context, entityType domain.EntityType, fileName, contentType string) (string, string, error) {
	if m.GeneratePresignedUploadURLFunc != nil {
		return m.GeneratePresignedUploadURLFunc(ctx, entityType, fileName, contentType)
	}
	key, err := m.GenerateFileKey(entityType, filepath.Ext(fileName))
	if err != nil {
		return "", "", err
	}
	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s?X-Amz-Signature=mock", m.Bucket, m.Region, key)
	return url, key, nil
}

// GeneratePresignedDownloadURL generates a mock download URL
func (m *MockS3Client) GeneratePresignedDownloadURL(ctx context.Context, key string) (string, error) {
	if m.GeneratePresignedDownloadURLFunc != nil {
		return m.GeneratePresignedDownloadURLFunc(ctx, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s?X-Amz-Signature=mock", m.Bucket, m.Region, key), nil
}

// DeleteFile records the deleted key
func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	m.DeletedKeys = append(m.DeletedKeys, key)
	return nil
}

// GetFileURL returns the plain URL for an object
func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}
