package highlight

import "context"

// Highlight is an externally derived notable moment. Advisory only:
// it seeds overlay events and notification captions.
type Highlight struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Label   string  `json:"label"`
	Caption string  `json:"caption"`
}

// Extractor finds highlight moments in a transcript. Best-effort: an
// empty slice on any failure, never an error that aborts the run.
type Extractor interface {
	Extract(ctx context.Context, transcriptText string) []Highlight
}
