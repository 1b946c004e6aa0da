package notify

import (
	"context"

	"github.com/tmaulidan/shortforge/internal/highlight"
)

// Notification carries the finished artifact and its companions.
type Notification struct {
	VideoPath      string
	ThumbnailPath  string
	TranscriptPath string
	Highlights     []highlight.Highlight
}

// Notifier delivers the finished short to the operator channel.
// Delivery failure never affects the produced artifact.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
