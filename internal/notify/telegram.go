package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmaulidan/shortforge/internal/highlight"
)

// Send delivers the finished short: the video with a caption built from
// highlights and a transcript excerpt, then the thumbnail and the
// transcript as a document. Artifacts over the size ceiling degrade to
// a text notice.
func (n *implNotifier) Send(ctx context.Context, notification Notification) error {
	caption := BuildCaption(notification.TranscriptPath, notification.Highlights)

	info, err := os.Stat(notification.VideoPath)
	if err != nil {
		return fmt.Errorf("stat video: %w", err)
	}

	if info.Size() > maxVideoBytes {
		n.logger.Warn(ctx, "video too large for delivery (%d bytes), sending text notice", info.Size())
		return n.sendMessage(ctx, caption+"\n\nVideo terlalu besar untuk diunggah; simpan lokal pada server.")
	}

	if err := n.sendFile(ctx, "sendVideo", "video", notification.VideoPath, caption); err != nil {
		return err
	}

	if notification.ThumbnailPath != "" {
		if _, err := os.Stat(notification.ThumbnailPath); err == nil {
			if err := n.sendFile(ctx, "sendPhoto", "photo", notification.ThumbnailPath, "Preview gambar highlight"); err != nil {
				n.logger.Warn(ctx, "thumbnail delivery failed: %v", err)
			}
		}
	}

	if notification.TranscriptPath != "" {
		if err := n.sendTranscript(ctx, notification.TranscriptPath); err != nil {
			n.logger.Warn(ctx, "transcript delivery failed: %v", err)
		}
	}

	return nil
}

func (n *implNotifier) sendTranscript(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat transcript: %w", err)
	}
	if info.Size() > maxTranscriptBytes {
		return n.sendMessage(ctx, "Transkrip terlalu besar untuk diunggah; simpan lokal pada server.")
	}
	return n.sendFile(ctx, "sendDocument", "document", path, "")
}

// BuildCaption assembles the notification caption: a header, one line
// per highlight, and the first 500 bytes of the transcript.
func BuildCaption(transcriptPath string, highlights []highlight.Highlight) string {
	lines := []string{"Hasil Short otomatis"}

	if len(highlights) > 0 {
		lines = append(lines, "Highlights:")
		for _, h := range highlights {
			lines = append(lines, fmt.Sprintf("- %.1fs: %s", h.Start, h.Caption))
		}
	}

	if transcriptPath != "" {
		if data, err := os.ReadFile(transcriptPath); err == nil && len(data) > 0 {
			excerpt := data
			truncated := false
			if len(excerpt) > 500 {
				excerpt = excerpt[:500]
				truncated = true
			}
			text := strings.ReplaceAll(string(excerpt), "\n", " ")
			if truncated {
				text += "..."
			}
			lines = append(lines, "", "Transkrip (potongan):", text)
		}
	}

	return strings.Join(lines, "\n")
}

func (n *implNotifier) sendMessage(ctx context.Context, text string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)

	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return n.do(req)
}

// sendFile uploads a file to a bot method (sendVideo, sendPhoto,
// sendDocument) with an optional caption.
func (n *implNotifier) sendFile(ctx context.Context, method, field, path, caption string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", field, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy %s into form: %w", field, err)
	}
	_ = w.WriteField("chat_id", n.chatID)
	if caption != "" {
		_ = w.WriteField("caption", caption)
	}
	if method == "sendVideo" {
		_ = w.WriteField("supports_streaming", "true")
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/%s", n.apiBase, n.botToken, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return n.do(req)
}

func (n *implNotifier) do(req *http.Request) error {
	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram api: HTTP %d: %s", resp.StatusCode, string(data))
	}
	return nil
}
