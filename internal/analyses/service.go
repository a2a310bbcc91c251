package analyses

import (
	"time"

	"ats-backend/internal/engine"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/telemetry"
	"ats-backend/internal/shared/util"
)

// Service wraps the analysis engine with process metrics. The engine itself
// is pure; everything operational lives here so the engine stays testable in
// isolation.
type Service struct {
	Analyzer *engine.Analyzer
}

// NewService constructs a Service around the given analyzer.
func NewService(analyzer *engine.Analyzer) *Service {
	return &Service{Analyzer: analyzer}
}

// Analyze scores a resume against a job description, recording counters and
// duration around the engine call. Document contents are never logged; a
// short fingerprint lets repeat analyses of the same document be correlated.
func (s *Service) Analyze(resumeText, jobDescription string) (*engine.AnalysisResult, error) {
	metrics.IncAnalysisStarted()
	start := time.Now()

	result, err := s.Analyzer.Analyze(resumeText, jobDescription)
	elapsedMs := float64(time.Since(start).Microseconds()) / 1000.0
	metrics.ObserveAnalysisDurationMs(elapsedMs)
	if err != nil {
		metrics.IncAnalysisFailed()
		return nil, err
	}

	metrics.IncAnalysisCompleted()
	telemetry.Info("analysis.complete", map[string]any{
		"resume_hash": util.HashContent(resumeText),
		"job_hash":    util.HashContent(jobDescription),
		"ats_score":   result.ATSScore,
		"duration_ms": elapsedMs,
	})
	return result, nil
}
