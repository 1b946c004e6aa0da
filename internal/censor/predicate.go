package censor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tmaulidan/shortforge/internal/transcript"
)

// EnableExpr builds an ffmpeg enable expression that is true while t
// falls inside any of the given windows. Windows are normalized but not
// merged; overlapping windows are redundant and harmless. An empty
// window list yields an empty expression, which callers treat as "no
// effect, copy through".
func EnableExpr(windows []transcript.Window) string {
	if len(windows) == 0 {
		return ""
	}

	parts := make([]string, 0, len(windows))
	for _, w := range windows {
		w = w.Normalize()
		parts = append(parts, fmt.Sprintf("between(t,%s,%s)", formatSeconds(w.Start), formatSeconds(w.End)))
	}
	return strings.Join(parts, "+")
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
