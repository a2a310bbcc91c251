package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analyses"
	"ats-backend/internal/engine"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(analyzeRateLimits()),
	)

	extractor := engine.SelectExtractor(cfg.ExtractorMode)
	analyzer := engine.NewAnalyzer(extractor, engine.ScoreWeights{
		Keyword:    cfg.KeywordWeight,
		Similarity: cfg.SimilarityWeight,
		Section:    cfg.SectionWeight,
	})
	analysisHandler := analyses.NewHandler(analyses.NewService(analyzer), cfg.MaxUploadBytes)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	analysisHandler.RegisterRoutes(api)

	return r
}

// analyzeRateLimits keeps analysis posts, which burn CPU per call, on a
// tighter budget than plain reads.
func analyzeRateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return "ANALYZE"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"ANALYZE": {Rate: 2, Burst: 5},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
