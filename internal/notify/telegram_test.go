package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaulidan/shortforge/internal/highlight"
	"github.com/tmaulidan/shortforge/internal/logger"
)

func TestBuildCaption(t *testing.T) {
	dir := t.TempDir()
	transcriptPath := filepath.Join(dir, "transcript.txt")
	require.NoError(t, os.WriteFile(transcriptPath, []byte("baris satu\nbaris dua"), 0644))

	highlights := []highlight.Highlight{
		{Start: 1.5, End: 3, Label: "funny", Caption: "Momen lucu!"},
	}

	caption := BuildCaption(transcriptPath, highlights)

	assert.Contains(t, caption, "Hasil Short otomatis")
	assert.Contains(t, caption, "- 1.5s: Momen lucu!")
	assert.Contains(t, caption, "Transkrip (potongan):")
	// newlines in the excerpt are flattened
	assert.Contains(t, caption, "baris satu baris dua")
}

func TestBuildCaptionTruncatesExcerpt(t *testing.T) {
	dir := t.TempDir()
	transcriptPath := filepath.Join(dir, "transcript.txt")
	require.NoError(t, os.WriteFile(transcriptPath, []byte(strings.Repeat("a", 600)), 0644))

	caption := BuildCaption(transcriptPath, nil)

	assert.Contains(t, caption, strings.Repeat("a", 500)+"...")
	assert.NotContains(t, caption, strings.Repeat("a", 501))
}

func TestBuildCaptionNoExtras(t *testing.T) {
	caption := BuildCaption("", nil)
	assert.Equal(t, "Hasil Short otomatis", caption)
}

func TestNewDisabledWithoutCredentials(t *testing.T) {
	assert.Nil(t, New("", "chat", logger.New("error")))
	assert.Nil(t, New("token", "", logger.New("error")))
	assert.NotNil(t, New("token", "chat", logger.New("error")))
}

func newTestNotifier(t *testing.T, server *httptest.Server) *implNotifier {
	t.Helper()
	n := New("test-token", "12345", logger.New("error")).(*implNotifier)
	n.apiBase = server.URL
	n.httpClient = server.Client()
	return n
}

func TestSendDeliversVideo(t *testing.T) {
	var methods []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		methods = append(methods, parts[len(parts)-1])
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dir := t.TempDir()
	videoPath := filepath.Join(dir, "short.mp4")
	require.NoError(t, os.WriteFile(videoPath, []byte("video-bytes"), 0644))
	transcriptPath := filepath.Join(dir, "transcript.txt")
	require.NoError(t, os.WriteFile(transcriptPath, []byte("halo"), 0644))

	n := newTestNotifier(t, server)
	err := n.Send(context.Background(), Notification{
		VideoPath:      videoPath,
		TranscriptPath: transcriptPath,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"sendVideo", "sendDocument"}, methods)
}

func TestSendOversizedVideoFallsBackToText(t *testing.T) {
	var methods []string
	var bodies []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		methods = append(methods, parts[len(parts)-1])
		r.ParseForm()
		bodies = append(bodies, r.FormValue("text"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dir := t.TempDir()
	videoPath := filepath.Join(dir, "short.mp4")
	big := make([]byte, maxVideoBytes+1)
	require.NoError(t, os.WriteFile(videoPath, big, 0644))

	n := newTestNotifier(t, server)
	err := n.Send(context.Background(), Notification{VideoPath: videoPath})

	require.NoError(t, err)
	require.Equal(t, []string{"sendMessage"}, methods)
	assert.Contains(t, bodies[0], "terlalu besar")
}

func TestSendMissingVideoFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := newTestNotifier(t, server)
	err := n.Send(context.Background(), Notification{VideoPath: "/missing.mp4"})
	assert.Error(t, err)
}
