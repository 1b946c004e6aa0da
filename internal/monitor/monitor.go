package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/internal/storage"
)

type implMonitor struct {
	provider      ClientProvider
	store         storage.Store
	handler       Handler
	logger        logger.Logger
	apiBase       string
	maxConcurrent int
}

type subscriptionsResponse struct {
	Items []struct {
		Snippet struct {
			ResourceID struct {
				ChannelID string `json:"channelId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// RunOnce performs one poll pass: it lists the authorized account's
// subscriptions, checks each channel's latest upload against the store,
// and hands new uploads to the handler. The channel is marked as seen
// BEFORE processing starts so a crashed or failed run never reprocesses
// the same upload. Per-channel API errors are logged and skipped; only
// the subscriptions listing itself is fatal for the pass.
func (m *implMonitor) RunOnce(ctx context.Context) (*Report, error) {
	client, err := m.provider.Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("authorize youtube client: %w", err)
	}

	channels, err := m.listSubscriptions(ctx, client)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var found []Detection

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.maxConcurrent)
	for _, channelID := range channels {
		g.Go(func() error {
			det, ok := m.checkChannel(gctx, client, channelID)
			if ok {
				mu.Lock()
				found = append(found, det)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Checked: len(channels), New: len(found), Found: found}
	m.logger.Info(ctx, "Poll pass done: %d channels checked, %d new uploads", report.Checked, report.New)
	return report, nil
}

func (m *implMonitor) listSubscriptions(ctx context.Context, client *http.Client) ([]string, error) {
	endpoint := m.apiBase + "/subscriptions?part=snippet&mine=true&maxResults=50"
	var resp subscriptionsResponse
	if err := m.getJSON(ctx, client, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	channels := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if id := item.Snippet.ResourceID.ChannelID; id != "" {
			channels = append(channels, id)
		}
	}
	return channels, nil
}

// checkChannel fetches the channel's latest upload and triggers
// processing when it differs from the stored last-seen video.
func (m *implMonitor) checkChannel(ctx context.Context, client *http.Client, channelID string) (Detection, bool) {
	endpoint := fmt.Sprintf("%s/search?part=snippet&channelId=%s&order=date&type=video&maxResults=1",
		m.apiBase, url.QueryEscape(channelID))

	var resp searchResponse
	if err := m.getJSON(ctx, client, endpoint, &resp); err != nil {
		m.logger.Warn(ctx, "Skipping channel %s: %v", channelID, err)
		return Detection{}, false
	}
	if len(resp.Items) == 0 {
		return Detection{}, false
	}

	videoID := resp.Items[0].ID.VideoID
	lastSeen, err := m.store.LastUpload(ctx, channelID)
	if err != nil {
		m.logger.Warn(ctx, "Skipping channel %s: %v", channelID, err)
		return Detection{}, false
	}
	if videoID == "" || videoID == lastSeen {
		return Detection{}, false
	}

	m.logger.Info(ctx, "New upload on channel %s: %s", channelID, videoID)

	// Mark first so the upload is never picked up twice.
	if err := m.store.SetLastUpload(ctx, channelID, videoID); err != nil {
		m.logger.Warn(ctx, "Skipping channel %s: %v", channelID, err)
		return Detection{}, false
	}

	videoURL := "https://www.youtube.com/watch?v=" + videoID
	if err := m.handler(ctx, videoURL); err != nil {
		m.logger.Error(ctx, "Failed to process %s: %v", videoURL, err)
	}

	return Detection{ChannelID: channelID, VideoID: videoID}, true
}

func (m *implMonitor) getJSON(ctx context.Context, client *http.Client, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("youtube api status %d: %s", resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
