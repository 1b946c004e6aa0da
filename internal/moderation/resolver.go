package moderation

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tmaulidan/shortforge/internal/transcript"
)

// Resolve flags each segment by local keyword match first; only
// segments with no local hit are sent to the remote classifier. A
// classifier error or absence leaves the segment unflagged.
func (r *implResolver) Resolve(ctx context.Context, segments []transcript.Segment) transcript.FlaggedSet {
	flagged := transcript.NewFlaggedSet()

	for i, seg := range segments {
		lower := strings.ToLower(seg.Text)

		if r.matchKeyword(lower) {
			flagged[i] = struct{}{}
			continue
		}

		if r.classifier == nil {
			continue
		}

		verdict, err := r.classifier.Classify(ctx, seg.Text)
		if err != nil {
			r.logger.Warn(ctx, "moderation unavailable for segment %d, treating as clean: %v", i, err)
			continue
		}
		if verdict {
			flagged[i] = struct{}{}
		}
	}

	return flagged
}

func (r *implResolver) matchKeyword(lowerText string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(lowerText, kw) {
			return true
		}
	}
	return false
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// LoadKeywords reads the local keyword list, one per line. Blank lines
// and '#' comments are skipped. A missing file yields an empty list.
func LoadKeywords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open keywords file: %w", err)
	}
	defer f.Close()

	var keywords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read keywords file: %w", err)
	}
	return keywords, nil
}
