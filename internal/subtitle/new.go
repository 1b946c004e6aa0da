package subtitle

import (
	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/pkg/executor"
)

type implBurner struct {
	fontSize int
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Burner with the given subtitle font size.
func New(fontSize int, exec executor.Executor, log logger.Logger) Burner {
	if fontSize <= 0 {
		fontSize = 36
	}
	return &implBurner{
		fontSize: fontSize,
		executor: exec,
		logger:   log,
	}
}
