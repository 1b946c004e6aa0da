package highlight

import (
	"github.com/tmaulidan/shortforge/internal/logger"
)

type implExtractor struct {
	apiKeys    []string
	currentKey int
	model      string
	maxResults int
	logger     logger.Logger
}

// New creates an Extractor that rotates through the supplied Gemini API
// keys. Returns nil when no keys are configured; callers treat a nil
// Extractor as "no highlights".
func New(apiKeys []string, model string, log logger.Logger) Extractor {
	if len(apiKeys) == 0 {
		return nil
	}
	return &implExtractor{
		apiKeys:    apiKeys,
		model:      model,
		maxResults: 5,
		logger:     log,
	}
}
