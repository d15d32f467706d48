package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
	"github.com/sangjun0330/mnl-recovery/internal/llm"
)

const (
	// AdviceRecentDays is how much simulated history the LLM sees.
	AdviceRecentDays = 14
	// AdviceOutlookDays is the forecast horizon the LLM sees.
	AdviceOutlookDays = 3
)

// AdviceService generates LLM-backed recovery advice.
type AdviceService interface {
	// Generate creates recovery advice for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error)
}

type adviceService struct {
	vitals    VitalsService
	forecasts ForecastService
	llmClient llm.AdviceLLM
	userRepo  userLookup
}

// userLookup is the slice of the user repository the advice path needs.
type userLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// NewAdviceService creates a new AdviceService.
func NewAdviceService(vitals VitalsService, forecasts ForecastService, llmClient llm.AdviceLLM, userRepo userLookup) AdviceService {
	return &adviceService{
		vitals:    vitals,
		forecasts: forecasts,
		llmClient: llmClient,
		userRepo:  userRepo,
	}
}

func (s *adviceService) Generate(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Recent simulated days feed the LLM context; the full fold behind them
	// also yields the current state the advice anchors on.
	vitals, err := s.vitals.Compute(ctx, userID, domain.VitalsRequest{})
	if err != nil {
		return nil, err
	}
	recent := vitals.Days
	if len(recent) > AdviceRecentDays {
		recent = recent[len(recent)-AdviceRecentDays:]
	}

	outlook, err := s.forecasts.Forecast(ctx, userID, domain.ForecastRequest{Days: AdviceOutlookDays})
	if err != nil {
		return nil, err
	}
	// The hour-by-hour curves are noise at LLM scale; keep the summaries.
	outlookDays := outlook.Days
	for i := range outlookDays {
		outlookDays[i].Hours = nil
	}

	adviceCtx := &domain.AdviceContext{
		Profile: user.EngineProfile(),
		Current: vitals.Current,
		Recent:  recent,
		Outlook: outlookDays,
	}

	llmOutput, err := s.llmClient.GenerateAdvice(ctx, adviceCtx)
	if err != nil {
		return nil, err
	}

	return &domain.AdviceResponse{
		Current: vitals.Current,
		Advice:  *llmOutput,
	}, nil
}
