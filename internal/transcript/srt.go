package transcript

import (
	"fmt"
	"os"
	"strings"
)

// RedactionMarker replaces the text of flagged cues in the subtitle track.
const RedactionMarker = "[REDACTED]"

// RenderSRT renders segments as an SRT subtitle track, one cue per
// segment in segment order, 1-indexed. Flagged cues carry the redaction
// marker instead of their original text.
func RenderSRT(segments []Segment, flagged FlaggedSet) string {
	var lines []string
	for idx, seg := range segments {
		start := seg.Start
		end := seg.End
		if end <= start {
			end = start + 1.0
		}
		text := seg.Text
		if flagged.Has(idx) {
			text = RedactionMarker
		}
		lines = append(lines, fmt.Sprintf("%d", idx+1))
		lines = append(lines, fmt.Sprintf("%s --> %s", formatTimestamp(start), formatTimestamp(end)))
		lines = append(lines, text)
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// WriteSRT writes the rendered subtitle track to path. A write failure
// here is fatal for the run; there is no earlier artifact to fall back to.
func WriteSRT(segments []Segment, flagged FlaggedSet, path string) error {
	if err := os.WriteFile(path, []byte(RenderSRT(segments, flagged)), 0644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

// formatTimestamp renders seconds as HH:MM:SS,mmm.
func formatTimestamp(s float64) string {
	h := int(s) / 3600
	m := (int(s) % 3600) / 60
	sec := int(s) % 60
	ms := int((s - float64(int(s))) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, sec, ms)
}
