package soundboard

import "context"

// Mixer overlays scheduled sound events onto a video's audio track in
// a single mixing pass.
type Mixer interface {
	Overlay(ctx context.Context, videoIn string, events []SoundEvent, outPath string) error
}
