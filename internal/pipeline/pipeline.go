package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tmaulidan/shortforge/internal/censor"
	"github.com/tmaulidan/shortforge/internal/highlight"
	"github.com/tmaulidan/shortforge/internal/notify"
	"github.com/tmaulidan/shortforge/internal/soundboard"
	"github.com/tmaulidan/shortforge/internal/transcript"
)

// Process runs the full stage chain over one source video (a URL or a
// local file). The orchestrator threads a single evolving artifact
// through the stages: each stage attempt either replaces the current
// artifact on success or records its failure and leaves the artifact
// untouched. After the initial clip exists the run never aborts on a
// stage failure; the result is the best artifact the surviving stages
// produced.
func (p *implProcessor) Process(ctx context.Context, source string) (*Result, error) {
	startTime := time.Now()
	failures := NewFailureLog()

	workDir, err := p.createWorkDir()
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting short generation: %s", source)
	p.logger.Info(ctx, "Work dir: %s", workDir)
	p.logger.Info(ctx, "========================================")

	// Stage 0: acquire and trim. Without an initial clip there is
	// nothing to degrade to, so failures here are fatal.
	current, err := p.acquireClip(ctx, source, workDir)
	if err != nil {
		return nil, err
	}

	// Stage 1: transcription. On failure the store degrades to a
	// single whole-clip segment with empty text, and censorship
	// effectively no-ops.
	text, segments := p.transcribeClip(ctx, current, failures)

	// Stage 2: flag resolution and the redacted subtitle track. The
	// redaction stage only fails on storage I/O, which is fatal this
	// early in the chain.
	flagged := p.deps.Resolver.Resolve(ctx, segments)
	p.logger.Info(ctx, "Flagged %d of %d segments", len(flagged), len(segments))

	srtPath := filepath.Join(workDir, "subtitles.srt")
	if err := transcript.WriteSRT(segments, flagged, srtPath); err != nil {
		return nil, err
	}

	// Stage 3: censorship chain, only when something is flagged.
	if len(flagged) > 0 {
		current = p.censorClip(ctx, current, workDir, segments, flagged, failures)
	}

	// Stage 4: subtitle burn-in, isolated.
	subtitled := filepath.Join(workDir, "short_subtitled.mp4")
	if err := p.deps.Burner.Burn(ctx, current, srtPath, subtitled); err != nil {
		p.logger.Warn(ctx, "subtitle burn-in failed, keeping previous artifact: %v", err)
		failures.Record(StageBurnSubtitles, err)
	} else {
		current = subtitled
	}

	// Stage 5: highlights and overlay events.
	var highlights []highlight.Highlight
	if p.deps.Extractor != nil {
		highlights = p.deps.Extractor.Extract(ctx, text)
	}
	current = p.applyOverlays(ctx, current, workDir, segments, highlights, failures)

	// Publish the final artifact into the output directory. On failure
	// the artifact stays in the work dir, still usable.
	if published, err := p.publish(current, workDir); err != nil {
		p.logger.Warn(ctx, "publish to output dir failed, artifact stays in work dir: %v", err)
		failures.Record(StagePublish, err)
	} else {
		current = published
	}

	// Companions for the notification.
	transcriptPath := p.writeTranscript(ctx, workDir, text)
	thumbPath := p.makeThumbnail(ctx, current, workDir, failures)

	result := &Result{
		FinalVideo:     current,
		SubtitlePath:   srtPath,
		TranscriptPath: transcriptPath,
		Highlights:     highlights,
		Failures:       failures,
	}

	// Stage 6: notification, isolated; never affects the artifact.
	if p.deps.Notifier != nil {
		err := p.deps.Notifier.Send(ctx, notify.Notification{
			VideoPath:      result.FinalVideo,
			ThumbnailPath:  thumbPath,
			TranscriptPath: result.TranscriptPath,
			Highlights:     highlights,
		})
		if err != nil {
			p.logger.Warn(ctx, "notification failed: %v", err)
			failures.Record(StageNotify, err)
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Short generation finished: %s", result.FinalVideo)
	p.logger.Info(ctx, "Stage failures: %d", failures.Len())
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return result, nil
}

func (p *implProcessor) createWorkDir() (string, error) {
	runID := uuid.New().String()[:8]
	workDir := filepath.Join(p.cfg.Paths.Temp, "run-"+runID)
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	return workDir, nil
}

// acquireClip downloads remote sources and trims/rescales the input
// into the initial short clip.
func (p *implProcessor) acquireClip(ctx context.Context, source, workDir string) (string, error) {
	input := source
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		downloaded, err := p.deps.Media.Download(ctx, source, workDir)
		if err != nil {
			return "", fmt.Errorf("download source: %w", err)
		}
		input = downloaded
	}

	short := filepath.Join(workDir, "short.mp4")
	if err := p.deps.Media.TrimScale(ctx, input, short, p.cfg.Pipeline.ShortMaxSeconds); err != nil {
		return "", fmt.Errorf("trim source clip: %w", err)
	}
	return short, nil
}

func (p *implProcessor) transcribeClip(ctx context.Context, video string, failures *FailureLog) (string, []transcript.Segment) {
	text, segments, err := p.deps.Transcriber.Transcribe(ctx, video)
	if err != nil {
		p.logger.Warn(ctx, "transcription failed, degrading to whole-clip segment: %v", err)
		failures.Record(StageTranscribe, err)
		return "", transcript.WholeClip(float64(p.cfg.Pipeline.ShortMaxSeconds), "")
	}
	if len(segments) == 0 {
		segments = transcript.WholeClip(float64(p.cfg.Pipeline.ShortMaxSeconds), text)
	}
	return text, segments
}

// censorClip runs the audio bleep, the audio recombination, and the
// video blur over the current artifact, each step isolated. A failure
// while producing the bleeped track still attempts the blur against
// the uncensored audio; a failure recombining an already-bleeped track
// abandons the whole chain and falls back to the pre-censorship
// artifact.
func (p *implProcessor) censorClip(ctx context.Context, current, workDir string, segments []transcript.Segment, flagged transcript.FlaggedSet, failures *FailureLog) string {
	pre := current

	editedPCM, err := p.bleepAudio(ctx, current, workDir, segments, flagged)
	if err != nil {
		p.logger.Warn(ctx, "audio censor failed, continuing with original audio: %v", err)
		failures.Record(StageAudioCensor, err)
	} else {
		bleeped := filepath.Join(workDir, "short_bleeped.mp4")
		if err := p.deps.Media.ReplaceAudioPCM(ctx, current, editedPCM, bleeped); err != nil {
			p.logger.Warn(ctx, "audio recombination failed, abandoning censorship chain: %v", err)
			failures.Record(StageRecombine, err)
			return pre
		}
		current = bleeped
	}

	expr := censor.EnableExpr(flagged.Windows(segments))
	blurred := filepath.Join(workDir, "short_censored.mp4")
	if err := p.deps.Media.Blur(ctx, current, blurred, expr); err != nil {
		p.logger.Warn(ctx, "video censor failed, keeping previous artifact: %v", err)
		failures.Record(StageVideoCensor, err)
		return current
	}
	return blurred
}

// bleepAudio extracts the audio track as a PCM buffer, splices the
// synthetic tone over every flagged window, and writes the edited
// buffer for recombination.
func (p *implProcessor) bleepAudio(ctx context.Context, video, workDir string, segments []transcript.Segment, flagged transcript.FlaggedSet) (string, error) {
	rawPCM := filepath.Join(workDir, "audio_raw.pcm")
	if err := p.deps.Media.ExtractPCM(ctx, video, rawPCM); err != nil {
		return "", err
	}

	samples, err := censor.ReadPCM(rawPCM)
	if err != nil {
		return "", err
	}

	edits := censor.Plan(segments, flagged)
	edited := censor.Apply(samples, edits)

	editedPCM := filepath.Join(workDir, "audio_bleeped.pcm")
	if err := censor.WritePCM(editedPCM, edited); err != nil {
		return "", err
	}

	p.logger.Info(ctx, "Bleeped %d flagged windows", len(edits))
	return editedPCM, nil
}

// applyOverlays schedules sound and image events from keyword matches
// and highlights, then runs the audio-mix pass and the image-overlay
// passes, each isolated. The mix always lands before the image passes
// so the final composition order is deterministic.
func (p *implProcessor) applyOverlays(ctx context.Context, current, workDir string, segments []transcript.Segment, highlights []highlight.Highlight, failures *FailureLog) string {
	sounds := soundboard.Discover(p.cfg.Assets.Sounds)
	images := soundboard.Discover(p.cfg.Assets.Images)

	events := soundboard.DetectEvents(segments, sounds)
	labelEvents, imageEvents := soundboard.Schedule(highlights, images)
	events = append(events, labelEvents...)
	resolved := soundboard.ResolveEvents(events, sounds)

	if len(resolved) > 0 {
		withSounds := filepath.Join(workDir, "short_with_sounds.mp4")
		if err := p.deps.Mixer.Overlay(ctx, current, resolved, withSounds); err != nil {
			p.logger.Warn(ctx, "sound overlay failed, keeping previous artifact: %v", err)
			failures.Record(StageMixSounds, err)
		} else {
			current = withSounds
		}
	}

	if len(imageEvents) > 0 {
		withImages := filepath.Join(workDir, "short_with_images.mp4")
		if err := p.deps.Compositor.Apply(ctx, current, imageEvents, withImages); err != nil {
			p.logger.Warn(ctx, "image overlay failed, keeping previous artifact: %v", err)
			failures.Record(StageOverlayImages, err)
		} else {
			current = withImages
		}
	}

	return current
}

// publish copies the final artifact into the configured output
// directory, named after the run.
func (p *implProcessor) publish(current, workDir string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	dst := filepath.Join(p.cfg.Paths.Output, filepath.Base(workDir)+".mp4")
	src, err := os.Open(current)
	if err != nil {
		return "", fmt.Errorf("open artifact: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", fmt.Errorf("copy artifact: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close output file: %w", err)
	}
	return dst, nil
}

func (p *implProcessor) writeTranscript(ctx context.Context, workDir, text string) string {
	if text == "" {
		return ""
	}
	path := filepath.Join(workDir, "transcript.txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		p.logger.Warn(ctx, "failed to write transcript: %v", err)
		return ""
	}
	return path
}

func (p *implProcessor) makeThumbnail(ctx context.Context, video, workDir string, failures *FailureLog) string {
	path := filepath.Join(workDir, "short.thumb.jpg")
	if err := p.deps.Media.Thumbnail(ctx, video, path); err != nil {
		p.logger.Warn(ctx, "thumbnail generation failed: %v", err)
		failures.Record(StageThumbnail, err)
		return ""
	}
	return path
}
