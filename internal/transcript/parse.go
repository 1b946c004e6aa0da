package transcript

import (
	"encoding/json"
	"fmt"
	"strings"
)

// verboseResponse mirrors the verbose JSON shape of the transcription
// endpoint: full text plus timed segments.
type verboseResponse struct {
	Text     string `json:"text"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// ParseVerboseJSON decodes a verbose transcription response into the
// full transcript text and its timed segments. Responses without
// segments yield text only and a nil segment slice; the caller degrades
// to a whole-clip segment.
func ParseVerboseJSON(data []byte) (string, []Segment, error) {
	var resp verboseResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", nil, fmt.Errorf("decode transcription response: %w", err)
	}

	if len(resp.Segments) == 0 {
		return resp.Text, nil, nil
	}

	segments := make([]Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		end := s.End
		if end <= s.Start {
			end = s.Start + 1.0
		}
		segments = append(segments, Segment{
			Start: s.Start,
			End:   end,
			Text:  strings.TrimSpace(s.Text),
		})
	}
	return resp.Text, segments, nil
}
