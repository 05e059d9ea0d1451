package job

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"project-task-api/internal/client"
	"project-task-api/internal/repository"
)

// CleanupJob reclaims temporary attachments whose upload was never
// confirmed against a task, meeting or project
type CleanupJob struct {
	attachmentRepo repository.AttachmentRepository
	s3Client       client.S3ClientInterface
	logger         *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	attachmentRepo repository.AttachmentRepository,
	s3Client client.S3ClientInterface,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		attachmentRepo: attachmentRepo,
		s3Client:       s3Client,
		logger:         logger,
	}
}

// Run finds every expired TEMP attachment and deletes it from object
// storage and the database. Rows whose object deletion failed stay in the
// database so the next run retries them.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting cleanup job for expired temporary attachments")

	expiredAttachments, err := j.attachmentRepo.FindExpiredTempAttachments(ctx)
	if err != nil {
		j.logger.Error("Failed to find expired temporary attachments",
			zap.Error(err),
		)
		return
	}

	if len(expiredAttachments) == 0 {
		j.logger.Info("No expired temporary attachments found")
		return
	}

	j.logger.Info("Found expired temporary attachments",
		zap.Int("count", len(expiredAttachments)),
	)

	var successfulDeletionIDs []uuid.UUID
	failCount := 0

	for _, attachment := range expiredAttachments {
		if err := j.s3Client.DeleteFile(ctx, attachment.FileKey); err != nil {
			j.logger.Error("Failed to delete file from storage",
				zap.String("attachment_id", attachment.ID.String()),
				zap.String("file_key", attachment.FileKey),
				zap.Error(err),
			)
			failCount++
			continue
		}

		successfulDeletionIDs = append(successfulDeletionIDs, attachment.ID)

		j.logger.Debug("Deleted file from storage",
			zap.String("attachment_id", attachment.ID.String()),
			zap.String("file_key", attachment.FileKey),
		)
	}

	if len(successfulDeletionIDs) > 0 {
		if err := j.attachmentRepo.DeleteBatch(ctx, successfulDeletionIDs); err != nil {
			j.logger.Error("Failed to delete attachments from database",
				zap.Int("count", len(successfulDeletionIDs)),
				zap.Error(err),
			)
		} else {
			j.logger.Info("Successfully deleted attachments from database",
				zap.Int("count", len(successfulDeletionIDs)),
			)
		}
	}

	j.logger.Info("Cleanup job completed",
		zap.Int("total_expired", len(expiredAttachments)),
		zap.Int("success", len(successfulDeletionIDs)),
		zap.Int("failed", failCount),
	)
}
