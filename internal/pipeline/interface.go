package pipeline

import (
	"context"

	"github.com/tmaulidan/shortforge/internal/highlight"
)

// Result is the terminal output of one pipeline run: the best artifact
// the stage chain could produce, plus its companions and the failure
// log for operator inspection.
type Result struct {
	FinalVideo     string
	SubtitlePath   string
	TranscriptPath string
	Highlights     []highlight.Highlight
	Failures       *FailureLog
}

// Processor runs the full short-generation pipeline over one source.
type Processor interface {
	Process(ctx context.Context, source string) (*Result, error)
}
