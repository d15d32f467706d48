package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/api/validation"
	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/service"
	"github.com/sangjun0330/mnl-recovery/pkg/dateutil"
	"github.com/sangjun0330/mnl-recovery/pkg/problem"
)

type HealthLogHandler struct {
	service service.HealthLogService
}

func NewHealthLogHandler(service service.HealthLogService) *HealthLogHandler {
	return &HealthLogHandler{service: service}
}

// Create handles POST /v1/users/{userId}/health-logs
// @Summary Record a daily log
// @Description Log one day's shift and health data. A second create for the same date merges the new fields onto the existing log. Use client_request_id for safe retries (idempotency). Returns 200 when an existing log was returned or amended, 201 when new.
// @Tags health-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateHealthLogRequest true "Daily log data"
// @Success 201 {object} domain.HealthLogResponse "New log created"
// @Success 200 {object} domain.HealthLogResponse "Existing log returned or amended"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/health-logs [post]
func (h *HealthLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateHealthLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, isExisting, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid log fields").Write(w)
			return
		}
		problem.InternalError("Failed to create health log").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if isExisting {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(log.ToResponse())
}

// GetByDate handles GET /v1/users/{userId}/health-logs/{date}
// @Summary Get the log for a date
// @Description Fetch the single daily log for a calendar date.
// @Tags health-logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date path string true "Calendar date" format(date) example(2026-08-29)
// @Success 200 {object} domain.HealthLogResponse
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User or log not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/health-logs/{date} [get]
func (h *HealthLogHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	date := chi.URLParam(r, "date")
	if _, err := dateutil.ParseISO(date); err != nil {
		problem.BadRequest("Date must be in YYYY-MM-DD format").Write(w)
		return
	}

	log, err := h.service.GetByDate(r.Context(), userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Log not found").Write(w)
			return
		}
		problem.InternalError("Failed to get health log").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(log.ToResponse())
}

// Update handles PATCH /v1/users/{userId}/health-logs/{date}
// @Summary Amend the log for a date
// @Description Partially update the daily log for a calendar date. Only the provided fields change.
// @Tags health-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date path string true "Calendar date" format(date) example(2026-08-29)
// @Param request body domain.UpdateHealthLogRequest true "Fields to update"
// @Success 200 {object} domain.HealthLogResponse
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User or log not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/health-logs/{date} [patch]
func (h *HealthLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	date := chi.URLParam(r, "date")
	if _, err := dateutil.ParseISO(date); err != nil {
		problem.BadRequest("Date must be in YYYY-MM-DD format").Write(w)
		return
	}

	var req domain.UpdateHealthLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, err := h.service.GetByDate(r.Context(), userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Log not found").Write(w)
			return
		}
		problem.InternalError("Failed to get health log").Write(w)
		return
	}

	updated, err := h.service.Update(r.Context(), userID, log.ID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Log not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid log fields").Write(w)
			return
		}
		problem.InternalError("Failed to update health log").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated.ToResponse())
}

// List handles GET /v1/users/{userId}/health-logs
// @Summary List daily logs
// @Description Fetch paginated log history. Filter by date range. Results sorted by date descending (newest first).
// @Tags health-logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of date range (YYYY-MM-DD)" format(date) example(2026-08-01)
// @Param to query string false "End of date range (YYYY-MM-DD)" format(date) example(2026-08-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.HealthLogListResponse "Daily logs with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/health-logs [get]
func (h *HealthLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list health logs").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.HealthLogFilter, []problem.FieldError) {
	var filter domain.HealthLogFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := dateutil.ParseISO(fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := dateutil.ParseISO(toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.To = &to
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
