package transcript

import "sort"

// Segment is one transcript unit: a time window plus the spoken text.
// Segments are ordered by start but may overlap and are not normalized.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Window scopes an effect to an interval of the clip.
type Window struct {
	Start float64
	End   float64
}

// Normalize enforces a minimum one-second span when the window would
// otherwise be empty or inverted.
func (w Window) Normalize() Window {
	if w.End <= w.Start {
		w.End = w.Start + 1.0
	}
	return w
}

// Duration returns the window span in seconds.
func (w Window) Duration() float64 {
	return w.End - w.Start
}

// FlaggedSet holds indexes of segments marked for censorship.
type FlaggedSet map[int]struct{}

// NewFlaggedSet builds a FlaggedSet from segment indexes.
func NewFlaggedSet(indexes ...int) FlaggedSet {
	s := make(FlaggedSet, len(indexes))
	for _, i := range indexes {
		s[i] = struct{}{}
	}
	return s
}

// Has reports whether segment index i is flagged.
func (s FlaggedSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Indexes returns the flagged indexes in ascending order.
func (s FlaggedSet) Indexes() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Windows returns the normalized time windows of the flagged segments,
// in index order.
func (s FlaggedSet) Windows(segments []Segment) []Window {
	var out []Window
	for _, i := range s.Indexes() {
		if i < 0 || i >= len(segments) {
			continue
		}
		seg := segments[i]
		out = append(out, Window{Start: seg.Start, End: seg.End}.Normalize())
	}
	return out
}

// WholeClip returns the degenerate single-segment store covering the
// entire clip, used when transcription yields no usable segments.
func WholeClip(duration float64, text string) []Segment {
	return []Segment{{Start: 0, End: duration, Text: text}}
}
