package moderation

import (
	"github.com/tmaulidan/shortforge/internal/logger"
)

type implResolver struct {
	keywords   []string
	classifier Classifier
	logger     logger.Logger
}

// New creates a Resolver that checks the local keyword list first and
// falls back to the remote classifier. classifier may be nil, in which
// case only the keyword list applies.
func New(keywords []string, classifier Classifier, log logger.Logger) Resolver {
	return &implResolver{
		keywords:   normalizeKeywords(keywords),
		classifier: classifier,
		logger:     log,
	}
}
