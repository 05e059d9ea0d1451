package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"project-task-api/internal/metrics"
)

// TranscriptionRequest is the payload sent to the AI service
type TranscriptionRequest struct {
	AudioURL string `json:"audioUrl"`
	Model    string `json:"model,omitempty"`
	Language string `json:"language,omitempty"`
}

// TranscriptionResult is the AI service's answer for one recording
type TranscriptionResult struct {
	Transcript  string `json:"transcript"`
	Summary     string `json:"summary"`
	ActionItems string `json:"actionItems"`
}

// TranscriptionClient defines the interface for the AI transcription service
type TranscriptionClient interface {
	// Transcribe sends an audio recording URL and returns the transcript,
	// a summary, and extracted action items
	Transcribe(ctx context.Context, audioURL string) (*TranscriptionResult, error)
}

// transcriptionClient implements TranscriptionClient
type transcriptionClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewTranscriptionClient creates a new transcription API client
func NewTranscriptionClient(baseURL, apiKey, model string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) TranscriptionClient {
	return &transcriptionClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// Transcribe sends the recording to the AI service and parses the result
func (c *transcriptionClient) Transcribe(ctx context.Context, audioURL string) (*TranscriptionResult, error) {
	url := fmt.Sprintf("%s/v1/transcriptions", c.baseURL)

	jsonBody, err := json.Marshal(TranscriptionRequest{
		AudioURL: audioURL,
		Model:    c.model,
		Language: "ko",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transcription request: %w", err)
	}

	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(url, http.MethodPost, statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Transcription request failed",
			zap.String("url", url),
			zap.Error(err))
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcription response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Transcription service returned an error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, fmt.Errorf("transcription service returned status %d", resp.StatusCode)
	}

	var result TranscriptionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse transcription response: %w", err)
	}
	return &result, nil
}

// MockTranscriptionClient implements TranscriptionClient for testing
type MockTranscriptionClient struct {
	TranscribeFunc func(ctx context.Context, audioURL string) (*TranscriptionResult, error)
}

// Transcribe delegates to TranscribeFunc or returns a canned result
func (m *MockTranscriptionClient) Transcribe(ctx context.Context, audioURL string) (*TranscriptionResult, error) {
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, audioURL)
	}
	return &TranscriptionResult{
		Transcript:  "mock transcript",
		Summary:     "mock summary",
		ActionItems: "mock action items",
	}, nil
}
