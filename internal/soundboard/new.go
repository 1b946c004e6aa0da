package soundboard

import (
	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/pkg/executor"
)

type implMixer struct {
	executor executor.Executor
	logger   logger.Logger
}

// NewMixer creates a Mixer backed by ffmpeg.
func NewMixer(exec executor.Executor, log logger.Logger) Mixer {
	return &implMixer{
		executor: exec,
		logger:   log,
	}
}
