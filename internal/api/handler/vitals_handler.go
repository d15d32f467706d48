package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/api/validation"
	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/service"
	"github.com/sangjun0330/mnl-recovery/pkg/problem"
)

// VitalsHandler handles the recovery simulation endpoints.
type VitalsHandler struct {
	vitalsService   service.VitalsService
	forecastService service.ForecastService
}

// NewVitalsHandler creates a new VitalsHandler.
func NewVitalsHandler(vitalsService service.VitalsService, forecastService service.ForecastService) *VitalsHandler {
	return &VitalsHandler{
		vitalsService:   vitalsService,
		forecastService: forecastService,
	}
}

// GetVitals handles GET /v1/users/{userId}/vitals
// @Summary Get the daily recovery series
// @Description Simulate body/mental battery day by day over a date range, with full diagnostics per day.
// @Tags vitals
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Range start (YYYY-MM-DD), defaults to 29 days before to" format(date) example(2026-08-01)
// @Param to query string false "Range end (YYYY-MM-DD), defaults to today" format(date) example(2026-08-29)
// @Param version query string false "Engine version" Enums(v1, v2) default(v2)
// @Success 200 {object} domain.VitalsResponse "Recovery time series"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/vitals [get]
func (h *VitalsHandler) GetVitals(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	req := domain.VitalsRequest{
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
		Version: r.URL.Query().Get("version"),
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.vitalsService.Compute(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidDateRange) || errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid date range").Write(w)
			return
		}
		problem.InternalError("Failed to compute vitals").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetForecast handles GET /v1/users/{userId}/vitals/forecast
// @Summary Get the hourly battery forecast
// @Description Project the battery hour by hour over the upcoming schedule, with a per-day risk band.
// @Tags vitals
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "First forecast date (YYYY-MM-DD), defaults to today" format(date) example(2026-08-30)
// @Param days query integer false "Forecast horizon in days" default(3) minimum(1) maximum(14)
// @Success 200 {object} domain.ForecastResponse "Hourly forecast"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/vitals/forecast [get]
func (h *VitalsHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	req := domain.ForecastRequest{
		From: r.URL.Query().Get("from"),
		Days: parseIntParam(r, "days", service.DefaultForecastDays),
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.forecastService.Forecast(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid forecast parameters").Write(w)
			return
		}
		problem.InternalError("Failed to compute forecast").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
