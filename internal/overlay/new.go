package overlay

import (
	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/pkg/executor"
)

type implCompositor struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Compositor backed by ffmpeg.
func New(exec executor.Executor, log logger.Logger) Compositor {
	return &implCompositor{
		executor: exec,
		logger:   log,
	}
}
