package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical nap advisory assistant for a single person.

You receive a deterministic nap advisory (already decided: whether a nap is needed, its priority, the sleep category and time-of-day window) plus the raw sleep sessions from the last few days. The advisory's decision is final; never contradict it.

Your goals:
- Restate the advisory in friendly, concrete language.
- Point out patterns in the trailing sessions (durations, nap habits, quality scores).
- Explain WHY the advisory landed where it did, using only the provided numbers.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Do NOT change or second-guess the needs_nap decision.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "1-2 sentences restating the advisory and why.",
  "observations": [
    "2-5 bullet points about the trailing sleep sessions.",
    "If a nap already happened today, one item about it."
  ],
  "guidance": [
    "2-4 concrete, non-medical suggestions consistent with the advisory."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON with the computed nap advisory and the raw sleep sessions it was derived from.

- "advisory" is the engine's final decision. Treat it as ground truth.
- "sessions" covers the trailing fetch window; overnight sleep is dated to the day it ends.

JSON:

%s

Based on this data, respond in the required JSON format.`

// NapInsightsLLM is the interface for generating advisory narratives using an LLM.
type NapInsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated narrative.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements NapInsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating narratives.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to narrate a computed advisory.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
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

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
