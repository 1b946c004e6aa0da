package soundboard

import (
	"strings"

	"github.com/tmaulidan/shortforge/internal/highlight"
	"github.com/tmaulidan/shortforge/internal/transcript"
)

// SoundEvent schedules a sound asset at a point in time. Events carry
// either a resolved asset path or a label resolved against the
// AssetMap immediately before the overlay pass.
type SoundEvent struct {
	Start float64
	Sound string
	Label string
}

// ImageEvent schedules an image overlay over a time window.
type ImageEvent struct {
	Window transcript.Window
	Image  string
}

// DetectEvents scans every segment's text for the known sound keywords
// and schedules a SoundEvent at the segment start for each keyword that
// appears. One event per segment per keyword, regardless of how many
// times the keyword occurs within the text.
func DetectEvents(segments []transcript.Segment, sounds AssetMap) []SoundEvent {
	var events []SoundEvent
	for _, seg := range segments {
		lower := strings.ToLower(seg.Text)
		for kw, path := range sounds {
			if strings.Contains(lower, kw) {
				events = append(events, SoundEvent{Start: seg.Start, Sound: path})
			}
		}
	}
	return events
}

// Schedule derives overlay events from highlights. A "funny" highlight
// yields a SoundEvent keyed by its label at the window start and, when
// an image asset exists for the label, an ImageEvent over the window.
// Highlights with other labels yield nothing.
func Schedule(highlights []highlight.Highlight, images AssetMap) ([]SoundEvent, []ImageEvent) {
	var soundEvents []SoundEvent
	var imageEvents []ImageEvent

	for _, h := range highlights {
		label := strings.ToLower(h.Label)
		if label != "funny" {
			continue
		}

		w := transcript.Window{Start: h.Start, End: h.End}.Normalize()
		soundEvents = append(soundEvents, SoundEvent{Start: w.Start, Label: label})

		if img, ok := images.Lookup(label); ok {
			imageEvents = append(imageEvents, ImageEvent{Window: w, Image: img})
		}
	}

	return soundEvents, imageEvents
}

// ResolveEvents binds label-only events to concrete asset paths.
// Unresolvable labels are dropped silently.
func ResolveEvents(events []SoundEvent, sounds AssetMap) []SoundEvent {
	var out []SoundEvent
	for _, e := range events {
		if e.Sound != "" {
			out = append(out, e)
			continue
		}
		if path, ok := sounds.Lookup(e.Label); ok {
			out = append(out, SoundEvent{Start: e.Start, Sound: path})
		}
	}
	return out
}
