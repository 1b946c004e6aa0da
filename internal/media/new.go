package media

import (
	"github.com/tmaulidan/shortforge/internal/config"
	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/pkg/executor"
)

type implTransformer struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transformer backed by ffmpeg and yt-dlp.
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Transformer {
	return &implTransformer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
