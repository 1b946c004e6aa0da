package censor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaulidan/shortforge/internal/transcript"
)

func TestEnableExpr(t *testing.T) {
	tests := []struct {
		name    string
		windows []transcript.Window
		want    string
	}{
		{
			name:    "empty",
			windows: nil,
			want:    "",
		},
		{
			name:    "single window",
			windows: []transcript.Window{{Start: 2, End: 4}},
			want:    "between(t,2,4)",
		},
		{
			name:    "multiple windows ORed",
			windows: []transcript.Window{{Start: 0, End: 1.5}, {Start: 3, End: 4}},
			want:    "between(t,0,1.5)+between(t,3,4)",
		},
		{
			name:    "zero span normalized to one second",
			windows: []transcript.Window{{Start: 7, End: 7}},
			want:    "between(t,7,8)",
		},
		{
			name:    "overlapping windows kept as-is",
			windows: []transcript.Window{{Start: 1, End: 3}, {Start: 2, End: 4}},
			want:    "between(t,1,3)+between(t,2,4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnableExpr(tt.windows))
		})
	}
}

func TestPlan(t *testing.T) {
	segments := []transcript.Segment{
		{Start: 0, End: 2, Text: "hello"},
		{Start: 2, End: 4, Text: "bad word"},
		{Start: 6, End: 6, Text: "zero span"},
	}

	t.Run("flagged segment windows", func(t *testing.T) {
		edits := Plan(segments, transcript.NewFlaggedSet(1))
		assert.Equal(t, []Edit{{StartMS: 2000, EndMS: 4000}}, edits)
	})

	t.Run("zero span clamps to one second", func(t *testing.T) {
		edits := Plan(segments, transcript.NewFlaggedSet(2))
		assert.Equal(t, []Edit{{StartMS: 6000, EndMS: 7000}}, edits)
	})

	t.Run("empty flagged set yields no edits", func(t *testing.T) {
		assert.Empty(t, Plan(segments, transcript.NewFlaggedSet()))
	})

	t.Run("out of range index dropped", func(t *testing.T) {
		assert.Empty(t, Plan(segments, transcript.NewFlaggedSet(5)))
	})

	t.Run("edits ordered by start", func(t *testing.T) {
		edits := Plan(segments, transcript.NewFlaggedSet(1, 0))
		require.Len(t, edits, 2)
		assert.Equal(t, 0, edits[0].StartMS)
		assert.Equal(t, 2000, edits[1].StartMS)
	})
}

func TestApplyIdentityWhenNoEdits(t *testing.T) {
	samples := Tone(100)
	out := Apply(samples, nil)
	assert.Equal(t, samples, out)
}

func TestApplyReplacesSliceWithTone(t *testing.T) {
	// 4 seconds of silence, bleep [2000ms, 4000ms)
	samples := make([]int16, 4*SampleRate)
	edits := []Edit{{StartMS: 2000, EndMS: 4000}}

	out := Apply(samples, edits)

	// duration preserved: tone length equals replaced length
	assert.Len(t, out, len(samples))
	// leading samples untouched
	for i := 0; i < 2*SampleRate; i += SampleRate / 10 {
		assert.Zero(t, out[i])
	}
	// the replaced region carries the tone
	tone := Tone(2000)
	assert.Equal(t, tone, out[2*SampleRate:4*SampleRate])
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	samples := make([]int16, 2*SampleRate)
	edits := []Edit{{StartMS: 0, EndMS: 1000}}

	Apply(samples, edits)

	for _, s := range samples {
		require.Zero(t, s)
	}
}

func TestApplyEditPastEndExtendsBuffer(t *testing.T) {
	samples := make([]int16, SampleRate) // 1 second
	edits := []Edit{{StartMS: 500, EndMS: 2500}}

	out := Apply(samples, edits)

	// 500ms kept + full 2000ms tone
	assert.Len(t, out, millisToSamples(500)+millisToSamples(2000))
}

func TestTone(t *testing.T) {
	tone := Tone(1000)
	assert.Len(t, tone, SampleRate)
	// starts at zero crossing
	assert.Zero(t, tone[0])

	// peak respects the -6 dB gain
	var peak int16
	for _, s := range tone {
		if s > peak {
			peak = s
		}
	}
	assert.InDelta(t, 16422, int(peak), 100)
}

func TestSampleRoundTrip(t *testing.T) {
	samples := []int16{0, 1, -1, 32767, -32768, 12345}
	assert.Equal(t, samples, DecodeSamples(EncodeSamples(samples)))
}
