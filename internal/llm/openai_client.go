package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/sangjun0330/mnl-recovery/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const defaultSystemPrompt = `You are a non-medical recovery assistant for shift-working nurses.

You receive a user's recovery profile, their current body/mental battery state, a day-by-day simulation of recent days, and an hourly risk outlook for their upcoming shifts. You must base your conclusions only on the provided data.

Your goals:
- Describe the user's current recovery state in clear, neutral language.
- Highlight what recently drained or restored them: sleep debt, consecutive nights, quick returns, late caffeine, cycle phase.
- Point out the riskiest stretch in the upcoming schedule and when the low point lands.
- Give practical, behavioral suggestions around sleep anchoring, naps, caffeine timing, and using days off for debt repayment.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (nap timing, caffeine cutoffs, recovery days, sleep windows around night shifts).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the current recovery state and its main driver.",
  "observations": [
    "3-6 bullet points about recent patterns: sleep debt trend, night streaks, caffeine, cycle phase, battery lows.",
    "At least one item about the upcoming schedule's riskiest day.",
    "If relevant, one item about how their chronotype interacts with their shifts."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about sleep debt repayment if debt is elevated.",
    "Include at least one suggestion about the upcoming shifts if any day is in the caution or danger band."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this nurse's recovery data.

- "profile" holds their chronotype (0 = evening type, 1 = morning type) and caffeine sensitivity.
- "current" holds today's body/mental battery (0-100), sleep debt in hours, and night-shift streak.
- "recent" holds the simulated recent days, oldest first, each with shift code and diagnostic indices.
- "outlook" holds the hourly forecast for upcoming days: minimum battery, its clock hour, and a risk band.

Shift codes: D = day, E = evening, N = night, M = mid, OFF = day off, VAC = vacation.

JSON:

%s

Based on this data, respond in the required JSON format.`

// AdviceLLM is the interface for generating recovery advice using an LLM.
type AdviceLLM interface {
	// GenerateAdvice takes a context object and returns LLM-generated advice.
	GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.LLMAdviceOutput, error)
}

// OpenAIClient implements AdviceLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating advice.
// An empty systemPrompt falls back to the built-in one, so a managed prompt
// (e.g. loaded from Langfuse) can override it without a redeploy.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateAdvice calls OpenAI to generate recovery advice.
func (c *OpenAIClient) GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.LLMAdviceOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(adviceCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.LLMAdviceOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
