package moderation

import (
	"context"

	"github.com/tmaulidan/shortforge/internal/transcript"
)

// Resolver maps transcript segments to the set of flagged indexes.
type Resolver interface {
	Resolve(ctx context.Context, segments []transcript.Segment) transcript.FlaggedSet
}

// Classifier is the remote moderation capability: one text in, one
// flagged verdict out. Implementations must treat their own failures as
// "not flagged" at the caller (fail-open).
type Classifier interface {
	Classify(ctx context.Context, text string) (bool, error)
}
