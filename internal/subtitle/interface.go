package subtitle

import "context"

// Burner renders a subtitle track permanently into video frames.
type Burner interface {
	Burn(ctx context.Context, videoIn, srtPath, outPath string) error
}
