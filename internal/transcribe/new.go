package transcribe

import (
	"net/http"
	"time"

	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/pkg/executor"
)

type implTranscriber struct {
	apiKey     string
	language   string
	endpoint   string
	executor   executor.Executor
	httpClient *http.Client
	logger     logger.Logger
}

// New creates a Transcriber backed by the OpenAI transcription
// endpoint. Audio is extracted from the video with ffmpeg before
// upload.
func New(apiKey, language string, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		apiKey:   apiKey,
		language: language,
		endpoint: "https://api.openai.com/v1/audio/transcriptions",
		executor: exec,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: log,
	}
}
