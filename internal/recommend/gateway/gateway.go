// Package gateway abstracts the recommendation generators. Two
// implementations exist: a deterministic mock and the Gemini API client.
// The orchestrator is wired to exactly one of them at startup.
package gateway

import (
	"context"

	"book-scout/backend/internal/model"
)

// Params carries the per-request generation parameters alongside the
// prompt text the service built for the profile. The mock implementation
// ignores the prompt fields.
type Params struct {
	MaxPerCategory int
	ExcludeTitles  []string
	Seed           string
	SystemText     string
	Instruction    string
}

// Gateway generates book recommendations for a reader profile.
type Gateway interface {
	// Name identifies the implementation ("mock" or "gemini").
	Name() string
	Generate(ctx context.Context, profile *model.ReaderProfile, params Params) (*model.RecommendationResult, error)
}
