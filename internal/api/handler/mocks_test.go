package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/langfuse"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc        func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateProfileFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone, Chronotype: 0.5, CaffeineSensitivity: 1.0}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error) {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, id, req)
	}
	return nil, domain.ErrNotFound
}

// MockHealthLogService is a mock implementation of HealthLogService
type MockHealthLogService struct {
	createFunc    func(ctx context.Context, userID uuid.UUID, req *domain.CreateHealthLogRequest) (*domain.HealthLog, bool, error)
	updateFunc    func(ctx context.Context, userID uuid.UUID, logID uuid.UUID, req *domain.UpdateHealthLogRequest) (*domain.HealthLog, error)
	getByDateFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.HealthLog, error)
	listFunc      func(ctx context.Context, userID uuid.UUID, filter domain.HealthLogFilter) (*domain.HealthLogListResponse, error)
}

func (m *MockHealthLogService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHealthLogRequest) (*domain.HealthLog, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	logDate, _ := time.Parse("2006-01-02", req.Date)
	return &domain.HealthLog{
		ID:        uuid.New(),
		UserID:    userID,
		LogDate:   logDate,
		Shift:     req.Shift,
		CreatedAt: time.Now(),
	}, false, nil
}

func (m *MockHealthLogService) Update(ctx context.Context, userID uuid.UUID, logID uuid.UUID, req *domain.UpdateHealthLogRequest) (*domain.HealthLog, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, logID, req)
	}
	return &domain.HealthLog{
		ID:        logID,
		UserID:    userID,
		LogDate:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Shift:     "D",
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockHealthLogService) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.HealthLog, error) {
	if m.getByDateFunc != nil {
		return m.getByDateFunc(ctx, userID, date)
	}
	logDate, _ := time.Parse("2006-01-02", date)
	return &domain.HealthLog{
		ID:        uuid.New(),
		UserID:    userID,
		LogDate:   logDate,
		Shift:     "D",
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockHealthLogService) List(ctx context.Context, userID uuid.UUID, filter domain.HealthLogFilter) (*domain.HealthLogListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.HealthLogListResponse{
		Data:       []domain.HealthLogResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockVitalsService is a mock implementation of VitalsService
type MockVitalsService struct {
	computeFunc func(ctx context.Context, userID uuid.UUID, req domain.VitalsRequest) (*domain.VitalsResponse, error)
	currentFunc func(ctx context.Context, userID uuid.UUID) (*domain.VitalsCurrent, error)
}

func (m *MockVitalsService) Compute(ctx context.Context, userID uuid.UUID, req domain.VitalsRequest) (*domain.VitalsResponse, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, userID, req)
	}
	return &domain.VitalsResponse{
		From:   "2026-08-01",
		To:     "2026-08-30",
		Engine: "v2",
		Days:   []domain.VitalsDay{},
		Current: domain.VitalsCurrent{
			Date:          "2026-08-30",
			BodyBattery:   65,
			MentalBattery: 60,
		},
	}, nil
}

func (m *MockVitalsService) Current(ctx context.Context, userID uuid.UUID) (*domain.VitalsCurrent, error) {
	if m.currentFunc != nil {
		return m.currentFunc(ctx, userID)
	}
	return &domain.VitalsCurrent{Date: "2026-08-30", BodyBattery: 65, MentalBattery: 60}, nil
}

// MockForecastService is a mock implementation of ForecastService
type MockForecastService struct {
	forecastFunc func(ctx context.Context, userID uuid.UUID, req domain.ForecastRequest) (*domain.ForecastResponse, error)
}

func (m *MockForecastService) Forecast(ctx context.Context, userID uuid.UUID, req domain.ForecastRequest) (*domain.ForecastResponse, error) {
	if m.forecastFunc != nil {
		return m.forecastFunc(ctx, userID, req)
	}
	return &domain.ForecastResponse{From: "2026-08-30", InitialBattery: 65}, nil
}

// MockAdviceService is a mock implementation of AdviceService
type MockAdviceService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error)
}

func (m *MockAdviceService) Generate(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.AdviceResponse{
		Current: domain.VitalsCurrent{Date: "2026-08-30", BodyBattery: 65},
		Advice: domain.LLMAdviceOutput{
			Summary:      "Recovering well.",
			Observations: []string{"Sleep debt is trending down"},
			Guidance:     []string{"Keep the current sleep anchor"},
		},
	}, nil
}

// mockLangfuseClient for testing
type mockLangfuseClient struct {
	enabled    bool
	scoreCalls int
	lastScore  langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	m.lastScore = in
	return nil
}
