package media

import "context"

// Transformer is the opaque media-transform capability: every method
// consumes one artifact and produces a new one, never editing in place.
type Transformer interface {
	// Download fetches a remote video into dir and returns its path.
	Download(ctx context.Context, url, dir string) (string, error)
	// TrimScale trims the source to maxSeconds and letterboxes it to
	// 720x1280 portrait.
	TrimScale(ctx context.Context, in, out string, maxSeconds int) error
	// ExtractPCM demuxes the audio track as raw s16le mono 16 kHz PCM.
	ExtractPCM(ctx context.Context, video, pcmOut string) error
	// ReplaceAudioPCM remuxes a raw PCM track back under the video.
	ReplaceAudioPCM(ctx context.Context, video, pcmIn, out string) error
	// Blur applies a full-frame boxblur gated by the enable expression;
	// an empty expression degrades to a stream copy.
	Blur(ctx context.Context, in, out, enableExpr string) error
	// Copy duplicates an artifact without re-encoding.
	Copy(ctx context.Context, in, out string) error
	// Thumbnail grabs a single frame one second in.
	Thumbnail(ctx context.Context, video, out string) error
}
