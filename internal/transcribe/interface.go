package transcribe

import (
	"context"

	"github.com/tmaulidan/shortforge/internal/transcript"
)

// Transcriber converts a video's audio into transcript text and timed
// segments. Segments are returned directly; nil segments means the
// caller degrades to a single whole-clip segment.
type Transcriber interface {
	Transcribe(ctx context.Context, videoPath string) (string, []transcript.Segment, error)
}
