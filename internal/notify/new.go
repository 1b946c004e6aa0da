package notify

import (
	"net/http"
	"time"

	"github.com/tmaulidan/shortforge/internal/logger"
)

// Size ceilings for attachment delivery. Larger payloads degrade to a
// text-only notice.
const (
	maxVideoBytes      = 50 * 1024 * 1024
	maxTranscriptBytes = 5 * 1000 * 1000
)

type implNotifier struct {
	botToken   string
	chatID     string
	apiBase    string
	httpClient *http.Client
	logger     logger.Logger
}

// New creates a Telegram-backed Notifier. Returns nil when the bot
// token or chat id is missing; callers treat a nil Notifier as
// "notifications disabled".
func New(botToken, chatID string, log logger.Logger) Notifier {
	if botToken == "" || chatID == "" {
		return nil
	}
	return &implNotifier{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  "https://api.telegram.org",
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: log,
	}
}
