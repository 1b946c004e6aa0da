package monitor

import (
	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/internal/storage"
)

const defaultAPIBase = "https://www.googleapis.com/youtube/v3"

// New creates a Monitor instance. maxConcurrent bounds how many
// channels are checked at once.
func New(provider ClientProvider, store storage.Store, handler Handler, log logger.Logger, maxConcurrent int) Monitor {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &implMonitor{
		provider:      provider,
		store:         store,
		handler:       handler,
		logger:        log,
		apiBase:       defaultAPIBase,
		maxConcurrent: maxConcurrent,
	}
}
