package soundboard

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Overlay mixes every resolvable sound event into the video's audio
// track in one pass: each event's sound is delayed to its start time
// with adelay, then everything is summed with amix against the original
// track. Empty or fully unresolvable event lists degrade to a copy.
func (m *implMixer) Overlay(ctx context.Context, videoIn string, events []SoundEvent, outPath string) error {
	inputs := make([]SoundEvent, 0, len(events))
	for _, e := range events {
		if e.Sound == "" {
			continue
		}
		if _, err := os.Stat(e.Sound); err != nil {
			m.logger.Warn(ctx, "sound asset missing, skipping event at %.1fs: %s", e.Start, e.Sound)
			continue
		}
		inputs = append(inputs, e)
	}

	if len(inputs) == 0 {
		m.logger.Debug(ctx, "no resolvable sound events, copying through")
		return m.copy(ctx, videoIn, outPath)
	}

	args := []string{"-y", "-i", videoIn}
	for _, e := range inputs {
		args = append(args, "-i", e.Sound)
	}

	var filterParts []string
	var labels []string
	for i, e := range inputs {
		idx := i + 1 // input 0 is the video
		delayMS := int(e.Start * 1000)
		filterParts = append(filterParts, fmt.Sprintf("[%d:a]adelay=%d|%d[s%d]", idx, delayMS, delayMS, idx))
		labels = append(labels, fmt.Sprintf("[s%d]", idx))
	}

	amix := fmt.Sprintf("[0:a]%samix=inputs=%d:dropout_transition=0[aout]",
		strings.Join(labels, ""), 1+len(labels))
	filterComplex := strings.Join(append(filterParts, amix), ";")

	args = append(args,
		"-filter_complex", filterComplex,
		"-map", "0:v",
		"-map", "[aout]",
		"-c:v", "copy",
		"-c:a", "aac",
		outPath,
	)

	if _, err := m.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg mix soundboard: %w", err)
	}

	m.logger.Info(ctx, "Mixed %d sound events into %s", len(inputs), outPath)
	return nil
}

func (m *implMixer) copy(ctx context.Context, in, out string) error {
	if _, err := m.executor.Execute(ctx, "ffmpeg", "-y", "-i", in, "-c", "copy", out); err != nil {
		return fmt.Errorf("ffmpeg copy: %w", err)
	}
	return nil
}
