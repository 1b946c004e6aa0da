package watcher

import "context"

// Watcher monitors the input directory and dispatches new video files
// to the pipeline.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one dropped-in video file.
type Handler func(ctx context.Context, filePath string) error
