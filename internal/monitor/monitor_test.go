package monitor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaulidan/shortforge/internal/logger"
)

type staticProvider struct{}

func (staticProvider) Client(ctx context.Context) (*http.Client, error) {
	return http.DefaultClient, nil
}

type memStore struct {
	mu   sync.Mutex
	seen map[string]string
}

func newMemStore() *memStore { return &memStore{seen: map[string]string{}} }

func (s *memStore) LastUpload(ctx context.Context, channelID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen[channelID], nil
}

func (s *memStore) SetLastUpload(ctx context.Context, channelID, videoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[channelID] = videoID
	return nil
}

func (s *memStore) Close() error { return nil }

// fakeAPI serves the two YouTube endpoints the monitor hits.
func fakeAPI(t *testing.T, latest map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		items := ""
		for ch := range latest {
			if items != "" {
				items += ","
			}
			items += fmt.Sprintf(`{"snippet":{"resourceId":{"channelId":%q}}}`, ch)
		}
		fmt.Fprintf(w, `{"items":[%s]}`, items)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		ch := r.URL.Query().Get("channelId")
		vid, ok := latest[ch]
		if !ok || vid == "" {
			fmt.Fprint(w, `{"items":[]}`)
			return
		}
		fmt.Fprintf(w, `{"items":[{"id":{"videoId":%q}}]}`, vid)
	})
	return httptest.NewServer(mux)
}

func newTestMonitor(srvURL string, store *memStore, handler Handler) *implMonitor {
	m := New(staticProvider{}, store, handler, logger.New("error"), 2).(*implMonitor)
	m.apiBase = srvURL
	return m
}

func TestRunOnceDetectsNewUploads(t *testing.T) {
	srv := fakeAPI(t, map[string]string{
		"UC-one": "vid-1",
		"UC-two": "vid-2",
	})
	defer srv.Close()

	store := newMemStore()
	var mu sync.Mutex
	var processed []string
	handler := func(ctx context.Context, url string) error {
		mu.Lock()
		processed = append(processed, url)
		mu.Unlock()
		return nil
	}

	m := newTestMonitor(srv.URL, store, handler)
	report, err := m.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, 2, report.New)
	assert.ElementsMatch(t, processed, []string{
		"https://www.youtube.com/watch?v=vid-1",
		"https://www.youtube.com/watch?v=vid-2",
	})

	// state marked for both channels
	last, _ := store.LastUpload(context.Background(), "UC-one")
	assert.Equal(t, "vid-1", last)
}

func TestRunOnceSkipsAlreadySeen(t *testing.T) {
	srv := fakeAPI(t, map[string]string{"UC-one": "vid-1"})
	defer srv.Close()

	store := newMemStore()
	require.NoError(t, store.SetLastUpload(context.Background(), "UC-one", "vid-1"))

	calls := 0
	m := newTestMonitor(srv.URL, store, func(ctx context.Context, url string) error {
		calls++
		return nil
	})

	report, err := m.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Zero(t, report.New)
	assert.Zero(t, calls)
}

func TestRunOnceMarksBeforeProcessing(t *testing.T) {
	srv := fakeAPI(t, map[string]string{"UC-one": "vid-9"})
	defer srv.Close()

	store := newMemStore()
	m := newTestMonitor(srv.URL, store, func(ctx context.Context, url string) error {
		// by the time the handler runs the channel must already be marked
		last, _ := store.LastUpload(ctx, "UC-one")
		assert.Equal(t, "vid-9", last)
		return fmt.Errorf("boom")
	})

	report, err := m.RunOnce(context.Background())
	require.NoError(t, err)

	// handler failure does not unmark; the upload still counts as found
	assert.Equal(t, 1, report.New)
	last, _ := store.LastUpload(context.Background(), "UC-one")
	assert.Equal(t, "vid-9", last)
}

func TestRunOnceEmptyChannel(t *testing.T) {
	srv := fakeAPI(t, map[string]string{"UC-empty": ""})
	defer srv.Close()

	m := newTestMonitor(srv.URL, newMemStore(), func(ctx context.Context, url string) error { return nil })
	report, err := m.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Zero(t, report.New)
}
