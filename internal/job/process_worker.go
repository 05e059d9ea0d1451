package job

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"project-task-api/internal/client"
	"project-task-api/internal/domain"
	"project-task-api/internal/repository"
	"project-task-api/internal/service"
)

// popTimeout bounds each queue wait so the worker notices shutdown.
const popTimeout = 5 * time.Second

// ProcessWorker consumes the meeting transcription queue. Each queued
// meeting id is picked up once, marked PROCESSING, transcribed, and marked
// COMPLETED or FAILED. A FAILED meeting is not retried automatically; a new
// processing request re-enqueues it.
type ProcessWorker struct {
	redisClient *redis.Client
	meetingRepo repository.MeetingRepository
	transcriber client.TranscriptionClient
	s3Client    client.S3ClientInterface
	logger      *zap.Logger
	stop        chan struct{}
	done        chan struct{}
}

// NewProcessWorker creates a new ProcessWorker instance
func NewProcessWorker(
	redisClient *redis.Client,
	meetingRepo repository.MeetingRepository,
	transcriber client.TranscriptionClient,
	s3Client client.S3ClientInterface,
	logger *zap.Logger,
) *ProcessWorker {
	return &ProcessWorker{
		redisClient: redisClient,
		meetingRepo: meetingRepo,
		transcriber: transcriber,
		s3Client:    s3Client,
		logger:      logger,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start launches the consume loop in its own goroutine
func (w *ProcessWorker) Start() {
	go w.run()
	w.logger.Info("Transcription worker started",
		zap.String("queue", service.ProcessQueueKey))
}

// Stop signals the worker to exit and waits for the in-flight item, if
// any, to finish.
func (w *ProcessWorker) Stop() {
	close(w.stop)
	<-w.done
	w.logger.Info("Transcription worker stopped")
}

func (w *ProcessWorker) run() {
	defer close(w.done)
	ctx := context.Background()

	for {
		select {
		case <-w.stop:
			return
		default:
		}

		result, err := w.redisClient.BRPop(ctx, popTimeout, service.ProcessQueueKey).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // queue empty, wait again
			}
			w.logger.Error("Failed to pop from transcription queue", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		// BRPop returns [key, value]
		if len(result) < 2 {
			continue
		}
		meetingID, err := uuid.Parse(result[1])
		if err != nil {
			w.logger.Warn("Dropping malformed queue entry",
				zap.String("value", result[1]))
			continue
		}

		w.process(ctx, meetingID)
	}
}

// process runs one meeting through the transcription pipeline
func (w *ProcessWorker) process(ctx context.Context, meetingID uuid.UUID) {
	meeting, err := w.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		w.logger.Warn("Queued meeting no longer exists",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
		return
	}
	if meeting.ProcessingStatus != domain.ProcessingStatusQueued {
		w.logger.Warn("Skipping meeting not in queued state",
			zap.String("meeting_id", meetingID.String()),
			zap.String("status", string(meeting.ProcessingStatus)))
		return
	}

	if err := w.meetingRepo.UpdateProcessingStatus(ctx, meetingID, domain.ProcessingStatusProcessing); err != nil {
		w.logger.Error("Failed to mark meeting processing",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
		return
	}

	w.logger.Info("Transcribing meeting audio",
		zap.String("meeting_id", meetingID.String()),
		zap.String("audio_key", meeting.AudioKey))

	audioURL, err := w.s3Client.GeneratePresignedDownloadURL(ctx, meeting.AudioKey)
	if err != nil {
		w.fail(ctx, meetingID, "failed to sign audio URL", err)
		return
	}

	result, err := w.transcriber.Transcribe(ctx, audioURL)
	if err != nil {
		w.fail(ctx, meetingID, "transcription failed", err)
		return
	}

	fields := map[string]interface{}{
		"transcript":        result.Transcript,
		"summary":           result.Summary,
		"processing_status": domain.ProcessingStatusCompleted,
	}
	// Action items from the model only fill an empty field; manual notes win
	if result.ActionItems != "" && meeting.ActionItems == "" {
		fields["action_items"] = result.ActionItems
	}
	if err := w.meetingRepo.UpdateFields(ctx, meetingID, fields); err != nil {
		w.fail(ctx, meetingID, "failed to store transcription result", err)
		return
	}

	w.logger.Info("Meeting transcription completed",
		zap.String("meeting_id", meetingID.String()))
}

// fail persists the FAILED state so clients polling the meeting see a
// terminal status instead of a meeting stuck in PROCESSING.
func (w *ProcessWorker) fail(ctx context.Context, meetingID uuid.UUID, msg string, cause error) {
	w.logger.Error("Meeting transcription failed: "+msg,
		zap.String("meeting_id", meetingID.String()),
		zap.Error(cause))
	if err := w.meetingRepo.UpdateProcessingStatus(ctx, meetingID, domain.ProcessingStatusFailed); err != nil {
		w.logger.Error("Failed to mark meeting failed",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err))
	}
}
