package overlay

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tmaulidan/shortforge/internal/soundboard"
)

// Apply composites each image event as its own ffmpeg pass, centered on
// frame and gated by the event's window, chaining the output of pass i
// into pass i+1. Events with missing images are skipped.
func (c *implCompositor) Apply(ctx context.Context, videoIn string, events []soundboard.ImageEvent, outPath string) error {
	current := videoIn
	pass := 0

	for _, ev := range events {
		if ev.Image == "" {
			continue
		}
		if _, err := os.Stat(ev.Image); err != nil {
			c.logger.Warn(ctx, "image asset missing, skipping overlay at %.1fs: %s", ev.Window.Start, ev.Image)
			continue
		}

		w := ev.Window.Normalize()
		stepOut := fmt.Sprintf("%s.ov%d.mp4", strings.TrimSuffix(outPath, ".mp4"), pass)
		filter := fmt.Sprintf(
			"overlay=(main_w-overlay_w)/2:(main_h-overlay_h)/2:enable='between(t,%g,%g)'",
			w.Start, w.End,
		)

		args := []string{
			"-y",
			"-i", current,
			"-i", ev.Image,
			"-filter_complex", filter,
			"-c:a", "copy",
			stepOut,
		}
		if _, err := c.executor.Execute(ctx, "ffmpeg", args...); err != nil {
			return fmt.Errorf("ffmpeg overlay pass %d: %w", pass, err)
		}

		current = stepOut
		pass++
	}

	if current == outPath {
		return nil
	}
	if _, err := c.executor.Execute(ctx, "ffmpeg", "-y", "-i", current, "-c", "copy", outPath); err != nil {
		return fmt.Errorf("ffmpeg finalize overlay: %w", err)
	}

	c.logger.Info(ctx, "Applied %d image overlays to %s", pass, outPath)
	return nil
}
