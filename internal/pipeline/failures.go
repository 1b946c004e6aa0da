package pipeline

// Stage names used in failure records.
const (
	StageTranscribe    = "transcribe"
	StageAudioCensor   = "audio_censor"
	StageRecombine     = "recombine_audio"
	StageVideoCensor   = "video_censor"
	StageBurnSubtitles = "burn_subtitles"
	StageMixSounds     = "mix_sounds"
	StageOverlayImages = "overlay_images"
	StageThumbnail     = "thumbnail"
	StagePublish       = "publish"
	StageNotify        = "notify"
)

// FailureRecord captures one stage failure.
type FailureRecord struct {
	Stage string
	Err   error
}

// FailureLog collects stage failures in occurrence order. A failure
// never propagates past its stage boundary; it lands here instead.
type FailureLog struct {
	records []FailureRecord
}

// NewFailureLog creates an empty log.
func NewFailureLog() *FailureLog {
	return &FailureLog{}
}

// Record appends a failure for the named stage.
func (l *FailureLog) Record(stage string, err error) {
	l.records = append(l.records, FailureRecord{Stage: stage, Err: err})
}

// Failed reports whether the named stage recorded a failure.
func (l *FailureLog) Failed(stage string) bool {
	for _, r := range l.records {
		if r.Stage == stage {
			return true
		}
	}
	return false
}

// Records returns the failures in occurrence order.
func (l *FailureLog) Records() []FailureRecord {
	return l.records
}

// Len returns the number of recorded failures.
func (l *FailureLog) Len() int {
	return len(l.records)
}
