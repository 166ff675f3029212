package gateway

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"book-scout/backend/internal/model"
	"book-scout/backend/internal/recommend/response"
	"book-scout/backend/internal/recommend/validate"
)

// DefaultModel is the Gemini model used for recommendations.
const DefaultModel = "gemini-1.5-flash"

// rawLogLimit caps how much raw model output is written to logs.
const rawLogLimit = 1000

// contentGenerator abstracts the genai call so tests can substitute a fake.
// *genai.Models satisfies it.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGateway calls the Gemini API once per request and normalizes the
// returned text into the result schema. The client is created lazily so a
// process without a credential can still start and serve health checks;
// the missing key only surfaces as a ConfigurationError at call time.
type GeminiGateway struct {
	apiKey string
	model  string

	mu  sync.Mutex
	gen contentGenerator
}

// NewGeminiGateway creates the live implementation. An empty apiKey is not
// an error here; Generate reports it when a call is attempted.
func NewGeminiGateway(apiKey, modelName string) *GeminiGateway {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiGateway{apiKey: apiKey, model: modelName}
}

func (g *GeminiGateway) Name() string { return "gemini" }

func (g *GeminiGateway) generator(ctx context.Context) (contentGenerator, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gen != nil {
		return g.gen, nil
	}
	if g.apiKey == "" {
		return nil, &ConfigurationError{Msg: "GEMINI_API_KEY is not set"}
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: g.apiKey})
	if err != nil {
		return nil, &ConfigurationError{Msg: "failed to create genai client: " + err.Error()}
	}
	g.gen = client.Models
	return g.gen, nil
}

// generationConfig returns the fixed generation and safety parameters.
// These constants are part of the external contract and are never tuned
// per request.
func generationConfig(systemText string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopP:            genai.Ptr[float32](0.8),
		TopK:            genai.Ptr[float32](40),
		MaxOutputTokens: 2048,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	}
	if systemText != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: systemText}}}
	}
	return cfg
}

// Generate issues a single non-retried call. Transport failures and empty
// responses surface as UpstreamError; text that cannot be parsed into the
// result schema surfaces as SchemaError.
func (g *GeminiGateway) Generate(ctx context.Context, _ *model.ReaderProfile, params Params) (*model.RecommendationResult, error) {
	gen, err := g.generator(ctx)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: params.Instruction}},
		},
	}

	resp, err := gen.GenerateContent(ctx, g.model, contents, generationConfig(params.SystemText))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &UpstreamError{Msg: "model call timed out", Err: err}
		}
		return nil, &UpstreamError{Msg: "model call failed", Err: err}
	}

	text, err := firstText(resp)
	if err != nil {
		return nil, err
	}
	log.Printf("[DEBUG] Raw model text: %s", truncateForLog(text, rawLogLimit))

	parsed, err := response.Extract(text)
	if err != nil {
		return nil, &SchemaError{Msg: err.Error(), Raw: truncateForLog(text, rawLogLimit)}
	}

	doc, ok := validate.Canonicalize(parsed)
	if !ok {
		return nil, &SchemaError{Msg: "model output has no recognizable results shape", Raw: truncateForLog(text, rawLogLimit)}
	}

	payload := &validate.Payload{Doc: doc, MaxPerCategory: params.MaxPerCategory}
	if err := validate.Default().Run(payload); err != nil {
		return nil, &SchemaError{Msg: err.Error(), Raw: truncateForLog(text, rawLogLimit)}
	}

	results, err := payload.ResultSet()
	if err != nil {
		return nil, &SchemaError{Msg: err.Error(), Raw: truncateForLog(text, rawLogLimit)}
	}

	return &model.RecommendationResult{
		Metadata: &model.Metadata{
			RequestID: uuid.NewString(),
			Model:     g.model,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Results:        results,
		Warnings:       payload.Warnings,
		ExcludedTitles: params.ExcludeTitles,
		Source:         "gemini",
	}, nil
}

// firstText extracts the first non-empty text part of the first candidate.
func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &UpstreamError{Msg: "invalid response: empty candidate list"}
	}
	content := resp.Candidates[0].Content
	if content != nil {
		for _, part := range content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", &UpstreamError{Msg: "invalid response: no text content"}
}

// truncateForLog truncates a string for logging purposes.
func truncateForLog(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}
