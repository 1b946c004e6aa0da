package moderation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/internal/transcript"
)

type fakeClassifier struct {
	verdicts map[string]bool
	err      error
	calls    []string
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) (bool, error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return false, f.err
	}
	return f.verdicts[text], nil
}

func TestResolveKeywordShortCircuit(t *testing.T) {
	fake := &fakeClassifier{verdicts: map[string]bool{}}
	resolver := New([]string{"Bad Word"}, fake, logger.New("error"))

	segments := []transcript.Segment{
		{Start: 0, End: 2, Text: "hello"},
		{Start: 2, End: 4, Text: "this has a BAD WORD inside"},
	}

	flagged := resolver.Resolve(context.Background(), segments)

	assert.True(t, flagged.Has(1))
	assert.False(t, flagged.Has(0))
	// classifier must not be invoked for the keyword hit
	assert.Equal(t, []string{"hello"}, fake.calls)
}

func TestResolveRemoteVerdict(t *testing.T) {
	fake := &fakeClassifier{verdicts: map[string]bool{"nasty": true, "fine": false}}
	resolver := New(nil, fake, logger.New("error"))

	segments := []transcript.Segment{
		{Start: 0, End: 1, Text: "fine"},
		{Start: 1, End: 2, Text: "nasty"},
	}

	flagged := resolver.Resolve(context.Background(), segments)

	assert.Equal(t, []int{1}, flagged.Indexes())
}

func TestResolveFailOpen(t *testing.T) {
	fake := &fakeClassifier{err: errors.New("endpoint down")}
	resolver := New(nil, fake, logger.New("error"))

	segments := []transcript.Segment{{Start: 0, End: 1, Text: "anything"}}

	flagged := resolver.Resolve(context.Background(), segments)

	assert.Empty(t, flagged)
}

func TestResolveKeywordWinsOverFailingRemote(t *testing.T) {
	fake := &fakeClassifier{err: errors.New("endpoint down")}
	resolver := New([]string{"slur"}, fake, logger.New("error"))

	segments := []transcript.Segment{{Start: 0, End: 1, Text: "a slur here"}}

	flagged := resolver.Resolve(context.Background(), segments)

	assert.True(t, flagged.Has(0))
	assert.Empty(t, fake.calls)
}

func TestResolveNoClassifier(t *testing.T) {
	resolver := New([]string{"bad"}, nil, logger.New("error"))

	segments := []transcript.Segment{
		{Start: 0, End: 1, Text: "bad stuff"},
		{Start: 1, End: 2, Text: "clean"},
	}

	flagged := resolver.Resolve(context.Background(), segments)

	assert.Equal(t, []int{0}, flagged.Indexes())
}

func TestLoadKeywords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.txt")
	content := "# comment line\nfoo\n\n  bar  \n#another\nbaz\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	keywords, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar", "baz"}, keywords)
}

func TestLoadKeywordsMissingFile(t *testing.T) {
	keywords, err := LoadKeywords(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.Nil(t, keywords)
}
