package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/llm"
)

func TestAdviceHandler_GetAdvice(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		mockService    *MockAdviceService
		wantStatusCode int
	}{
		{
			name:           "advice generated",
			userID:         userID.String(),
			mockService:    &MockAdviceService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:   "user not found",
			userID: uuid.New().String(),
			mockService: &MockAdviceService{
				generateFunc: func(ctx context.Context, uid uuid.UUID) (*domain.AdviceResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:   "llm not configured",
			userID: userID.String(),
			mockService: &MockAdviceService{
				generateFunc: func(ctx context.Context, uid uuid.UUID) (*domain.AdviceResponse, error) {
					return nil, llm.ErrOpenAIUnavailable
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
		{
			name:   "llm request failed",
			userID: userID.String(),
			mockService: &MockAdviceService{
				generateFunc: func(ctx context.Context, uid uuid.UUID) (*domain.AdviceResponse, error) {
					return nil, llm.ErrOpenAIRequest
				},
			},
			wantStatusCode: http.StatusBadGateway,
		},
		{
			name:   "llm response unparseable",
			userID: userID.String(),
			mockService: &MockAdviceService{
				generateFunc: func(ctx context.Context, uid uuid.UUID) (*domain.AdviceResponse, error) {
					return nil, llm.ErrOpenAIResponse
				},
			},
			wantStatusCode: http.StatusBadGateway,
		},
		{
			name:           "malformed user ID",
			userID:         "not-a-uuid",
			mockService:    &MockAdviceService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAdviceHandler(tt.mockService, &mockLangfuseClient{})

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+tt.userID+"/vitals/advice", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userId", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rec := httptest.NewRecorder()

			handler.GetAdvice(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetAdvice() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAdviceHandler_GetAdvice_ResponseBody(t *testing.T) {
	userID := uuid.New()
	mockService := &MockAdviceService{
		generateFunc: func(ctx context.Context, uid uuid.UUID) (*domain.AdviceResponse, error) {
			return &domain.AdviceResponse{
				Current: domain.VitalsCurrent{Date: "2026-08-30", BodyBattery: 48, SleepDebt: 6},
				Advice: domain.LLMAdviceOutput{
					Summary:      "Sleep debt is elevated after the night rotation.",
					Observations: []string{"Three nights in a row", "Sleep dropped below 5 hours"},
					Guidance:     []string{"Plan a recovery sleep tonight", "Cut caffeine after 18:00"},
				},
			}, nil
		},
	}
	handler := NewAdviceHandler(mockService, &mockLangfuseClient{})

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/vitals/advice", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.GetAdvice(rec, req)

	var resp domain.AdviceResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Advice.Summary == "" {
		t.Error("expected a non-empty summary")
	}
	if len(resp.Advice.Guidance) != 2 {
		t.Errorf("guidance items = %d, want 2", len(resp.Advice.Guidance))
	}
	if resp.Current.BodyBattery != 48 {
		t.Errorf("body battery = %v, want 48", resp.Current.BodyBattery)
	}
}

func TestAdviceHandler_PostFeedback(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		body           string
		wantStatusCode int
		wantScoreCalls int
	}{
		{
			name:           "valid feedback",
			userID:         userID.String(),
			body:           `{"trace_id": "abc123", "score": 4, "comment": "helpful"}`,
			wantStatusCode: http.StatusNoContent,
			wantScoreCalls: 1,
		},
		{
			name:           "missing trace ID",
			userID:         userID.String(),
			body:           `{"score": 4}`,
			wantStatusCode: http.StatusBadRequest,
			wantScoreCalls: 0,
		},
		{
			name:           "score too high",
			userID:         userID.String(),
			body:           `{"trace_id": "abc123", "score": 9}`,
			wantStatusCode: http.StatusBadRequest,
			wantScoreCalls: 0,
		},
		{
			name:           "score too low",
			userID:         userID.String(),
			body:           `{"trace_id": "abc123", "score": 0}`,
			wantStatusCode: http.StatusBadRequest,
			wantScoreCalls: 0,
		},
		{
			name:           "invalid JSON",
			userID:         userID.String(),
			body:           `{invalid}`,
			wantStatusCode: http.StatusBadRequest,
			wantScoreCalls: 0,
		},
		{
			name:           "malformed user ID",
			userID:         "not-a-uuid",
			body:           `{"trace_id": "abc123", "score": 4}`,
			wantStatusCode: http.StatusBadRequest,
			wantScoreCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLangfuse := &mockLangfuseClient{enabled: true}
			handler := NewAdviceHandler(&MockAdviceService{}, mockLangfuse)

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+tt.userID+"/vitals/advice/feedback", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userId", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rec := httptest.NewRecorder()

			handler.PostFeedback(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("PostFeedback() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if mockLangfuse.scoreCalls != tt.wantScoreCalls {
				t.Errorf("score calls = %d, want %d", mockLangfuse.scoreCalls, tt.wantScoreCalls)
			}
		})
	}
}

func TestAdviceHandler_PostFeedback_ScorePayload(t *testing.T) {
	userID := uuid.New()
	mockLangfuse := &mockLangfuseClient{enabled: true}
	handler := NewAdviceHandler(&MockAdviceService{}, mockLangfuse)

	body := `{"trace_id": "trace-99", "score": 5, "comment": "spot on"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/vitals/advice/feedback", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	handler.PostFeedback(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("PostFeedback() status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if mockLangfuse.lastScore.TraceID != "trace-99" {
		t.Errorf("trace ID = %s, want trace-99", mockLangfuse.lastScore.TraceID)
	}
	if mockLangfuse.lastScore.Name != "user_rating" {
		t.Errorf("score name = %s, want user_rating", mockLangfuse.lastScore.Name)
	}
	if mockLangfuse.lastScore.Value != 5 {
		t.Errorf("score value = %v, want 5", mockLangfuse.lastScore.Value)
	}
}
