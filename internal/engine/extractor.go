package engine

import (
	"fmt"
	"sync"

	"github.com/jdkato/prose/v2"

	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/telemetry"
)

// Extractor modes accepted by SelectExtractor.
const (
	ModeAuto     = "auto"
	ModeModel    = "model"
	ModeFallback = "fallback"
)

var (
	selectOnce     sync.Once
	selectedLoader KeywordExtractor
)

// SelectExtractor resolves the process-wide keyword extractor exactly once.
// In auto and model modes it probes the linguistic model; if the probe fails
// the failure is cached and every subsequent call reuses the fallback path
// without retrying the load. Mode "fallback" skips the probe entirely.
func SelectExtractor(mode string) KeywordExtractor {
	selectOnce.Do(func() {
		if mode == ModeFallback {
			selectedLoader = FallbackExtractor{}
			telemetry.Info("extractor.selected", map[string]any{"path": "fallback", "reason": "configured"})
			return
		}
		if err := probeModel(); err != nil {
			selectedLoader = FallbackExtractor{}
			metrics.IncExtractorFallback()
			telemetry.Error("extractor.degraded", map[string]any{
				"path":  "fallback",
				"error": err.Error(),
			})
			return
		}
		selectedLoader = ModelExtractor{}
		telemetry.Info("extractor.selected", map[string]any{"path": "model"})
	})
	return selectedLoader
}

// probeModel loads the tagger against a tiny document so a broken model
// surfaces at startup instead of on the first user request.
func probeModel() (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("model probe panic: %v", rec)
		}
	}()
	_, err = prose.NewDocument("software engineer",
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	return err
}
