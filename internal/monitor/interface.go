package monitor

import (
	"context"
	"net/http"
)

// Detection is one new upload found during a poll pass.
type Detection struct {
	ChannelID string `json:"channel_id"`
	VideoID   string `json:"video_id"`
}

// Report summarizes one poll pass over the subscribed channels.
type Report struct {
	Checked int         `json:"checked"`
	New     int         `json:"new"`
	Found   []Detection `json:"found"`
}

// Monitor polls the subscribed channels for new uploads and hands each
// one to the processing handler.
type Monitor interface {
	RunOnce(ctx context.Context) (*Report, error)
}

// Handler processes one newly detected upload, identified by its watch URL.
type Handler func(ctx context.Context, videoURL string) error

// ClientProvider supplies an authorized HTTP client for the YouTube
// Data API. auth.Session satisfies it.
type ClientProvider interface {
	Client(ctx context.Context) (*http.Client, error)
}
