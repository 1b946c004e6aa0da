package transcribe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/tmaulidan/shortforge/internal/transcript"
)

// Transcribe extracts the audio track, sends it to the transcription
// endpoint requesting verbose JSON, and returns the full text plus the
// timed segments parsed from the response.
func (t *implTranscriber) Transcribe(ctx context.Context, videoPath string) (string, []transcript.Segment, error) {
	if t.apiKey == "" {
		return "", nil, fmt.Errorf("transcription api key not configured")
	}

	tmpDir, err := os.MkdirTemp("", "transcribe-*")
	if err != nil {
		return "", nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	audioPath := filepath.Join(tmpDir, "audio.mp3")
	if err := t.extractAudio(ctx, videoPath, audioPath); err != nil {
		return "", nil, err
	}

	body, err := t.upload(ctx, audioPath)
	if err != nil {
		return "", nil, err
	}

	text, segments, err := transcript.ParseVerboseJSON(body)
	if err != nil {
		return "", nil, err
	}

	t.logger.Info(ctx, "Transcription complete: %d segments, %d chars", len(segments), len(text))
	return text, segments, nil
}

// extractAudio converts the video's audio to mono 16 kHz mp3, the
// format the endpoint handles best.
func (t *implTranscriber) extractAudio(ctx context.Context, videoPath, audioPath string) error {
	args := []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-ac", "1",
		"-ar", "16000",
		audioPath,
	}
	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}
	return nil
}

func (t *implTranscriber) upload(ctx context.Context, audioPath string) ([]byte, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("copy audio into form: %w", err)
	}
	_ = w.WriteField("model", "whisper-1")
	_ = w.WriteField("language", t.language)
	_ = w.WriteField("response_format", "verbose_json")
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("transcription endpoint: HTTP %d: %s", resp.StatusCode, string(data))
	}

	return io.ReadAll(resp.Body)
}
