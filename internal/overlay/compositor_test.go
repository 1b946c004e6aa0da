package overlay

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/internal/soundboard"
	"github.com/tmaulidan/shortforge/internal/transcript"
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

func writeImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("png"), 0644))
	return path
}

func TestApplySequentialPasses(t *testing.T) {
	dir := t.TempDir()
	img := writeImage(t, dir, "funny.png")

	exec := &fakeExecutor{}
	comp := New(exec, logger.New("error"))

	events := []soundboard.ImageEvent{
		{Window: transcript.Window{Start: 1, End: 3}, Image: img},
		{Window: transcript.Window{Start: 5, End: 7}, Image: img},
	}

	require.NoError(t, comp.Apply(context.Background(), "in.mp4", events, "out.mp4"))

	// Two overlay passes plus a finalize copy.
	require.Len(t, exec.commands, 3)

	first := strings.Join(exec.commands[0], " ")
	assert.Contains(t, first, "-i in.mp4")
	assert.Contains(t, first, "enable='between(t,1,3)'")
	assert.Contains(t, first, "out.ov0.mp4")

	second := strings.Join(exec.commands[1], " ")
	// pass chaining: previous pass output becomes the next input
	assert.Contains(t, second, "-i out.ov0.mp4")
	assert.Contains(t, second, "enable='between(t,5,7)'")
	assert.Contains(t, second, "out.ov1.mp4")

	final := strings.Join(exec.commands[2], " ")
	assert.Contains(t, final, "-i out.ov1.mp4")
	assert.Contains(t, final, "-c copy out.mp4")
}

func TestApplySkipsMissingImages(t *testing.T) {
	exec := &fakeExecutor{}
	comp := New(exec, logger.New("error"))

	events := []soundboard.ImageEvent{
		{Window: transcript.Window{Start: 0, End: 1}, Image: "/missing.png"},
		{Window: transcript.Window{Start: 2, End: 3}, Image: ""},
	}

	require.NoError(t, comp.Apply(context.Background(), "in.mp4", events, "out.mp4"))

	// No overlay passes ran, only the finalize copy of the input.
	require.Len(t, exec.commands, 1)
	assert.Contains(t, strings.Join(exec.commands[0], " "), "-i in.mp4")
}

func TestApplyCenterOverlayFilter(t *testing.T) {
	dir := t.TempDir()
	img := writeImage(t, dir, "funny.png")

	exec := &fakeExecutor{}
	comp := New(exec, logger.New("error"))

	events := []soundboard.ImageEvent{{Window: transcript.Window{Start: 0, End: 2}, Image: img}}

	require.NoError(t, comp.Apply(context.Background(), "in.mp4", events, "out.mp4"))
	assert.Contains(t, strings.Join(exec.commands[0], " "), "overlay=(main_w-overlay_w)/2:(main_h-overlay_h)/2")
}
