package storage

import "context"

// Store is the durable state record mapping a monitored channel to its
// last seen upload. Reads and writes are atomic per channel.
type Store interface {
	LastUpload(ctx context.Context, channelID string) (string, error)
	SetLastUpload(ctx context.Context, channelID, videoID string) error
	Close() error
}
