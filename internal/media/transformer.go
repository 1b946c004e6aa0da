package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
)

const pcmSampleRate = "16000"

// Download fetches the source video with yt-dlp into dir as input.<ext>
// and returns the downloaded file path.
func (t *implTransformer) Download(ctx context.Context, url, dir string) (string, error) {
	outTemplate := filepath.Join(dir, "input.%(ext)s")

	t.logger.Info(ctx, "Downloading source video: %s", url)
	if _, err := t.executor.Execute(ctx, "yt-dlp", "-f", "best", "-o", outTemplate, url); err != nil {
		return "", fmt.Errorf("yt-dlp download: %w", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "input.*"))
	if err != nil || len(matches) == 0 {
		return "", fmt.Errorf("download produced no file in %s", dir)
	}
	return matches[0], nil
}

// TrimScale cuts the clip to maxSeconds from the start and letterboxes
// it to 720x1280 portrait.
func (t *implTransformer) TrimScale(ctx context.Context, in, out string, maxSeconds int) error {
	args := []string{
		"-y",
		"-i", in,
		"-ss", "0",
		"-t", strconv.Itoa(maxSeconds),
		"-vf", "scale=720:1280:force_original_aspect_ratio=decrease,pad=720:1280:-1:-1:black",
		"-c:a", t.cfg.AudioCodec,
		"-c:v", t.cfg.Encoder,
		out,
	}
	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg trim/scale: %w", err)
	}
	return nil
}

// ExtractPCM demuxes the audio track as raw signed 16-bit little-endian
// mono PCM at 16 kHz, the buffer format the audio censor edits.
func (t *implTransformer) ExtractPCM(ctx context.Context, video, pcmOut string) error {
	args := []string{
		"-y",
		"-i", video,
		"-vn",
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", pcmSampleRate,
		pcmOut,
	}
	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg extract pcm: %w", err)
	}
	return nil
}

// ReplaceAudioPCM remuxes an edited raw PCM track back under the video
// stream, producing a new artifact.
func (t *implTransformer) ReplaceAudioPCM(ctx context.Context, video, pcmIn, out string) error {
	args := []string{
		"-y",
		"-i", video,
		"-f", "s16le",
		"-ar", pcmSampleRate,
		"-ac", "1",
		"-i", pcmIn,
		"-map", "0:v",
		"-map", "1:a",
		"-c:v", "copy",
		"-c:a", t.cfg.AudioCodec,
		out,
	}
	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg replace audio: %w", err)
	}
	return nil
}

// Blur applies a full-frame boxblur wherever the enable expression is
// true. An empty expression means no flagged windows; the artifact is
// copied through unchanged.
func (t *implTransformer) Blur(ctx context.Context, in, out, enableExpr string) error {
	if enableExpr == "" {
		return t.Copy(ctx, in, out)
	}

	vf := fmt.Sprintf("boxblur=10:1:cr=2:enable='%s'", enableExpr)
	args := []string{
		"-y",
		"-i", in,
		"-vf", vf,
		"-c:a", "copy",
		out,
	}
	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg blur: %w", err)
	}
	return nil
}

// Copy duplicates the artifact without re-encoding.
func (t *implTransformer) Copy(ctx context.Context, in, out string) error {
	if _, err := t.executor.Execute(ctx, "ffmpeg", "-y", "-i", in, "-c", "copy", out); err != nil {
		return fmt.Errorf("ffmpeg copy: %w", err)
	}
	return nil
}

// Thumbnail grabs a single frame one second into the clip.
func (t *implTransformer) Thumbnail(ctx context.Context, video, out string) error {
	args := []string{
		"-y",
		"-i", video,
		"-ss", "00:00:01",
		"-vframes", "1",
		out,
	}
	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg thumbnail: %w", err)
	}
	return nil
}
