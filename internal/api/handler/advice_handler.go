package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/langfuse"
	"github.com/sangjun0330/mnl-recovery/internal/llm"
	"github.com/sangjun0330/mnl-recovery/internal/service"
	"github.com/sangjun0330/mnl-recovery/pkg/problem"
)

// AdviceHandler handles LLM-backed recovery advice endpoints.
type AdviceHandler struct {
	adviceService  service.AdviceService
	langfuseClient langfuse.Client
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(adviceService service.AdviceService, langfuseClient langfuse.Client) *AdviceHandler {
	return &AdviceHandler{
		adviceService:  adviceService,
		langfuseClient: langfuseClient,
	}
}

// GetAdvice handles GET /v1/users/{userId}/vitals/advice
// @Summary Get LLM-powered recovery advice
// @Description Generate recovery advice from the current state, recent simulation, and upcoming schedule risk.
// @Tags vitals
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.AdviceResponse "Recovery advice with LLM analysis"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/vitals/advice [get]
func (h *AdviceHandler) GetAdvice(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.adviceService.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate advice from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate advice").Write(w)
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// FeedbackRequest is the request body for advice feedback.
// @Description Request body for submitting feedback on advice.
type FeedbackRequest struct {
	// Trace ID from the advice response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"Nailed the nap timing."`
}

// PostFeedback handles POST /v1/users/{userId}/vitals/advice/feedback
// @Summary Submit feedback on recovery advice
// @Description Submit a user rating and optional comment for a previous advice response.
// @Tags vitals
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/vitals/advice/feedback [post]
func (h *AdviceHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "userId")); err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Fire-and-forget: feedback is accepted even when Langfuse is disabled.
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
