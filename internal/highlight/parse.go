package highlight

import (
	"encoding/json"
	"strings"
)

// ParseHighlights pulls the first JSON array out of a model response
// and sanitizes each entry. Responses that wrap the array in code
// fences or prose still parse; anything unparsable returns nil.
func ParseHighlights(raw string) []Highlight {
	text := strings.TrimSpace(raw)

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return nil
	}

	var entries []struct {
		Start   json.Number `json:"start"`
		End     json.Number `json:"end"`
		Label   string      `json:"label"`
		Caption string      `json:"caption"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &entries); err != nil {
		return nil
	}

	var out []Highlight
	for _, it := range entries {
		s, err := it.Start.Float64()
		if err != nil {
			if it.Start != "" {
				continue
			}
			s = 0
		}
		e, err := it.End.Float64()
		if err != nil || e <= s {
			e = s + 2.0
		}
		label := it.Label
		if label == "" {
			label = "other"
		}
		out = append(out, Highlight{
			Start:   s,
			End:     e,
			Label:   label,
			Caption: it.Caption,
		})
	}
	return out
}
