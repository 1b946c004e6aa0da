package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaulidan/shortforge/internal/config"
	"github.com/tmaulidan/shortforge/internal/logger"
)

type fakeExecutor struct {
	commands [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.commands = append(f.commands, append([]string{name}, args...))
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func newTestTransformer(exec *fakeExecutor) Transformer {
	cfg := config.FFmpegConfig{Encoder: "libx264", Preset: "medium", AudioCodec: "aac"}
	return New(cfg, exec, logger.New("error"))
}

func TestTrimScale(t *testing.T) {
	exec := &fakeExecutor{}
	tr := newTestTransformer(exec)

	require.NoError(t, tr.TrimScale(context.Background(), "in.mp4", "out.mp4", 120))
	require.Len(t, exec.commands, 1)

	cmd := strings.Join(exec.commands[0], " ")
	assert.Contains(t, cmd, "-t 120")
	assert.Contains(t, cmd, "scale=720:1280:force_original_aspect_ratio=decrease,pad=720:1280:-1:-1:black")
	assert.Contains(t, cmd, "-c:v libx264")
}

func TestExtractPCM(t *testing.T) {
	exec := &fakeExecutor{}
	tr := newTestTransformer(exec)

	require.NoError(t, tr.ExtractPCM(context.Background(), "in.mp4", "audio.pcm"))
	cmd := strings.Join(exec.commands[0], " ")
	assert.Contains(t, cmd, "-f s16le")
	assert.Contains(t, cmd, "-ac 1")
	assert.Contains(t, cmd, "-ar 16000")
	assert.Contains(t, cmd, "-vn")
}

func TestReplaceAudioPCM(t *testing.T) {
	exec := &fakeExecutor{}
	tr := newTestTransformer(exec)

	require.NoError(t, tr.ReplaceAudioPCM(context.Background(), "in.mp4", "audio.pcm", "out.mp4"))
	cmd := strings.Join(exec.commands[0], " ")
	assert.Contains(t, cmd, "-map 0:v")
	assert.Contains(t, cmd, "-map 1:a")
	assert.Contains(t, cmd, "-c:v copy")
	assert.Contains(t, cmd, "-c:a aac")
}

func TestBlur(t *testing.T) {
	t.Run("with windows", func(t *testing.T) {
		exec := &fakeExecutor{}
		tr := newTestTransformer(exec)

		require.NoError(t, tr.Blur(context.Background(), "in.mp4", "out.mp4", "between(t,2,4)"))
		cmd := strings.Join(exec.commands[0], " ")
		assert.Contains(t, cmd, "boxblur=10:1:cr=2:enable='between(t,2,4)'")
		assert.Contains(t, cmd, "-c:a copy")
	})

	t.Run("empty expression copies through", func(t *testing.T) {
		exec := &fakeExecutor{}
		tr := newTestTransformer(exec)

		require.NoError(t, tr.Blur(context.Background(), "in.mp4", "out.mp4", ""))
		cmd := strings.Join(exec.commands[0], " ")
		assert.Contains(t, cmd, "-c copy")
		assert.NotContains(t, cmd, "boxblur")
	})
}

func TestDownloadFindsFile(t *testing.T) {
	dir := t.TempDir()
	exec := &fakeExecutor{}
	tr := newTestTransformer(exec)

	// simulate yt-dlp writing the file
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input.mp4"), []byte("x"), 0644))

	path, err := tr.Download(context.Background(), "https://example.com/watch?v=abc", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "input.mp4"), path)

	cmd := strings.Join(exec.commands[0], " ")
	assert.Contains(t, cmd, "yt-dlp")
	assert.Contains(t, cmd, "-f best")
}

func TestDownloadNoFile(t *testing.T) {
	exec := &fakeExecutor{}
	tr := newTestTransformer(exec)

	_, err := tr.Download(context.Background(), "https://example.com/v", t.TempDir())
	assert.Error(t, err)
}
