package censor

import (
	"math"
	"sort"

	"github.com/tmaulidan/shortforge/internal/transcript"
)

// Audio buffer parameters. The media transformer extracts tracks as
// signed 16-bit little-endian mono PCM at this rate.
const (
	SampleRate = 16000

	toneFrequency = 1000.0
	toneGainDB    = -6.0

	minEditMillis = 1000
)

// Edit replaces the samples in [StartMS, EndMS) with a synthetic tone
// of equal duration.
type Edit struct {
	StartMS int
	EndMS   int
}

// Plan converts the flagged segments into an ordered list of edit
// operations. A flagged segment whose span is zero or negative yields a
// one-second minimum edit. Indexes outside the segment range are
// dropped.
func Plan(segments []transcript.Segment, flagged transcript.FlaggedSet) []Edit {
	var edits []Edit
	for _, i := range flagged.Indexes() {
		if i < 0 || i >= len(segments) {
			continue
		}
		seg := segments[i]
		startMS := int(seg.Start * 1000)
		endMS := int(seg.End * 1000)
		if endMS <= startMS {
			endMS = startMS + minEditMillis
		}
		edits = append(edits, Edit{StartMS: startMS, EndMS: endMS})
	}

	sort.Slice(edits, func(a, b int) bool { return edits[a].StartMS < edits[b].StartMS })
	return edits
}

// Apply runs the edits over an immutable sample buffer and returns a
// new buffer; the input is never modified. Each edit is a pure
// slice-and-splice: samples before the edit, the tone, samples after.
// The tone always has the edit's full duration, so an edit reaching
// past the end of the buffer extends it.
func Apply(samples []int16, edits []Edit) []int16 {
	out := samples
	for _, e := range edits {
		out = splice(out, e)
	}
	return out
}

func splice(samples []int16, e Edit) []int16 {
	start := millisToSamples(e.StartMS)
	end := millisToSamples(e.EndMS)
	if start > len(samples) {
		start = len(samples)
	}
	if end > len(samples) {
		end = len(samples)
	}

	tone := Tone(e.EndMS - e.StartMS)

	out := make([]int16, 0, start+len(tone)+len(samples)-end)
	out = append(out, samples[:start]...)
	out = append(out, tone...)
	out = append(out, samples[end:]...)
	return out
}

// Tone generates durationMS of a 1 kHz sine at -6 dB gain.
func Tone(durationMS int) []int16 {
	n := millisToSamples(durationMS)
	amplitude := 32767.0 * math.Pow(10, toneGainDB/20)

	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(amplitude * math.Sin(2*math.Pi*toneFrequency*float64(i)/SampleRate))
	}
	return samples
}

func millisToSamples(ms int) int {
	return ms * SampleRate / 1000
}
