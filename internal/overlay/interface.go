package overlay

import (
	"context"

	"github.com/tmaulidan/shortforge/internal/soundboard"
)

// Compositor applies image overlay events onto a video.
type Compositor interface {
	Apply(ctx context.Context, videoIn string, events []soundboard.ImageEvent, outPath string) error
}
