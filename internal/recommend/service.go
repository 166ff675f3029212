// Package recommend orchestrates the recommendation pipeline: sanitize the
// profile, build the prompt, invoke the configured gateway, and return the
// normalized result.
package recommend

import (
	"context"

	"book-scout/backend/internal/model"
	"book-scout/backend/internal/recommend/gateway"
	"book-scout/backend/internal/recommend/prompt"
	"book-scout/backend/internal/recommend/sanitize"
)

// DefaultMaxPerCategory is used when the request omits the cap or sends a
// non-positive value.
const DefaultMaxPerCategory = 5

// ValidationError reports a malformed or incomplete request body.
// Maps to HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Msg
}

// Service runs the recommendation pipeline against an injected gateway.
// The mock/live choice is made once at wiring time, never per request.
type Service struct {
	gw      gateway.Gateway
	prompts *prompt.Builder
}

// NewService creates a service bound to the given gateway.
func NewService(gw gateway.Gateway) *Service {
	return &Service{
		gw:      gw,
		prompts: prompt.NewBuilder(),
	}
}

// GatewayName reports which gateway the service is wired to.
func (s *Service) GatewayName() string {
	return s.gw.Name()
}

// Recommend validates and sanitizes the request, builds the prompt pair,
// and dispatches to the gateway. Errors keep their gateway type so the
// transport layer can map them to status codes.
func (s *Service) Recommend(ctx context.Context, req *model.RecommendationRequest) (*model.RecommendationResult, error) {
	if req == nil || req.Profile == nil {
		return nil, &ValidationError{Msg: "profile is required"}
	}

	profile := sanitize.Profile(req.Profile)
	excludeTitles := sanitize.Strings(req.ExcludeTitles)
	seed := sanitize.String(req.Seed)

	maxPerCategory := req.MaxResultsPerCategory
	if maxPerCategory < 1 {
		maxPerCategory = DefaultMaxPerCategory
	}

	system := s.prompts.BuildSystemPrompt()
	instruction := s.prompts.BuildInstruction(profile, maxPerCategory, excludeTitles, seed)

	result, err := s.gw.Generate(ctx, profile, gateway.Params{
		MaxPerCategory: maxPerCategory,
		ExcludeTitles:  excludeTitles,
		Seed:           seed,
		SystemText:     system,
		Instruction:    instruction,
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, &gateway.UpstreamError{Msg: "gateway returned no result"}
	}

	if result.ExcludedTitles == nil && len(excludeTitles) > 0 {
		result.ExcludedTitles = excludeTitles
	}
	return result, nil
}
