package pipeline

import (
	"github.com/tmaulidan/shortforge/internal/config"
	"github.com/tmaulidan/shortforge/internal/highlight"
	"github.com/tmaulidan/shortforge/internal/logger"
	"github.com/tmaulidan/shortforge/internal/media"
	"github.com/tmaulidan/shortforge/internal/moderation"
	"github.com/tmaulidan/shortforge/internal/notify"
	"github.com/tmaulidan/shortforge/internal/overlay"
	"github.com/tmaulidan/shortforge/internal/soundboard"
	"github.com/tmaulidan/shortforge/internal/subtitle"
	"github.com/tmaulidan/shortforge/internal/transcribe"
)

// Deps are the stage collaborators the orchestrator drives. Extractor
// and Notifier may be nil: missing highlight extraction yields no
// highlights; a missing notifier skips delivery.
type Deps struct {
	Media       media.Transformer
	Transcriber transcribe.Transcriber
	Resolver    moderation.Resolver
	Burner      subtitle.Burner
	Mixer       soundboard.Mixer
	Compositor  overlay.Compositor
	Extractor   highlight.Extractor
	Notifier    notify.Notifier
}

type implProcessor struct {
	cfg    *config.Config
	deps   Deps
	logger logger.Logger
}

// New creates a Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		deps:   deps,
		logger: log,
	}
}
