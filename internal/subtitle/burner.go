package subtitle

import (
	"context"
	"fmt"
	"path/filepath"
)

// Burn renders the subtitle track into the video with the default
// styling. The subtitles filter parses its path argument specially, so
// ffmpeg runs in the subtitle's directory with a relative filename.
func (b *implBurner) Burn(ctx context.Context, videoIn, srtPath, outPath string) error {
	absVideo, err := filepath.Abs(videoIn)
	if err != nil {
		return fmt.Errorf("resolve video path: %w", err)
	}
	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	absSRT, err := filepath.Abs(srtPath)
	if err != nil {
		return fmt.Errorf("resolve srt path: %w", err)
	}

	workDir := filepath.Dir(absSRT)
	srtName := filepath.Base(absSRT)

	vf := fmt.Sprintf(
		"subtitles=%s:force_style='FontName=Arial,FontSize=%d,PrimaryColour=&HFFFFFF&'",
		srtName, b.fontSize,
	)
	args := []string{
		"-y",
		"-i", absVideo,
		"-vf", vf,
		"-c:a", "copy",
		absOut,
	}

	if _, err := b.executor.ExecuteInDir(ctx, workDir, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg burn subtitles: %w", err)
	}

	b.logger.Info(ctx, "Subtitles burned into %s", outPath)
	return nil
}
