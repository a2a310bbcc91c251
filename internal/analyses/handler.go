package analyses

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/engine"
	"ats-backend/internal/extract"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/server/respond"
	"ats-backend/internal/shared/util"
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyzeMultipart)
	rg.POST("/analyze-json", h.analyzeJSON)
}

type analyzeRequest struct {
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`
}

// analyzeMultipart accepts multipart form data: a job_description field plus
// either a resume_file upload (PDF/DOCX/TXT) or a resume_text field.
func (h *Handler) analyzeMultipart(c *gin.Context) {
	jobDescription := strings.TrimSpace(c.PostForm("job_description"))
	resumeText := c.PostForm("resume_text")

	fileHeader, fileErr := c.FormFile("resume_file")
	if fileErr != nil && strings.TrimSpace(resumeText) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error",
			"either resume_file or resume_text must be provided", nil)
		return
	}

	if fileHeader != nil {
		if h.MaxUploadBytes > 0 && fileHeader.Size > h.MaxUploadBytes {
			respond.Error(c, http.StatusBadRequest, "validation_error",
				"resume_file exceeds the upload size limit", nil)
			return
		}
		name, err := util.SanitizeFileName(fileHeader.Filename)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "extraction_failed", "could not extract text", nil)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "extraction_failed", "could not extract text", nil)
			return
		}

		text, err := extract.FromBytes(data, fileHeader.Header.Get("Content-Type"), name)
		if err != nil {
			if errors.Is(err, extract.ErrUnsupportedType) {
				respond.Error(c, http.StatusBadRequest, "validation_error",
					"unsupported file format, upload PDF, DOCX, or TXT", nil)
				return
			}
			respond.Error(c, http.StatusBadRequest, "extraction_failed", "could not extract text", nil)
			return
		}
		resumeText = text
	}

	h.respondWithAnalysis(c, resumeText, jobDescription)
}

// analyzeJSON mirrors the multipart endpoint for application/json callers.
func (h *Handler) analyzeJSON(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.respondWithAnalysis(c, req.ResumeText, req.JobDescription)
}

func (h *Handler) respondWithAnalysis(c *gin.Context, resumeText, jobDescription string) {
	result, err := h.Svc.Analyze(resumeText, jobDescription)
	if err != nil {
		var vErr *engine.ValidationError
		if errors.As(err, &vErr) {
			metrics.IncValidationRejected()
			respond.Error(c, http.StatusBadRequest, "validation_error", vErr.Message, []map[string]string{
				{"field": vErr.Field},
			})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
		return
	}

	c.Set("atsScore", result.ATSScore)
	c.Set("extractorPath", h.Svc.Analyzer.ExtractorName())
	respond.OK(c, result)
}
