package recommend

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-scout/backend/internal/model"
	"book-scout/backend/internal/recommend/gateway"
)

// countingGateway records calls and lets tests script the outcome.
type countingGateway struct {
	calls       int
	lastProfile *model.ReaderProfile
	lastParams  gateway.Params
	result      *model.RecommendationResult
	err         error
}

func (g *countingGateway) Name() string { return "fake" }

func (g *countingGateway) Generate(_ context.Context, profile *model.ReaderProfile, params gateway.Params) (*model.RecommendationResult, error) {
	g.calls++
	g.lastProfile = profile
	g.lastParams = params
	if g.err != nil {
		return nil, g.err
	}
	if g.result != nil {
		return g.result, nil
	}
	return &model.RecommendationResult{
		Metadata: &model.Metadata{RequestID: "test-id", Model: "fake"},
	}, nil
}

func TestRecommendMissingProfile(t *testing.T) {
	gw := &countingGateway{}
	svc := NewService(gw)

	_, err := svc.Recommend(context.Background(), &model.RecommendationRequest{})
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, gw.calls, "no gateway call for an invalid request")

	_, err = svc.Recommend(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 0, gw.calls)
}

func TestRecommendDefaultsMaxPerCategory(t *testing.T) {
	gw := &countingGateway{}
	svc := NewService(gw)

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"absent", 0, DefaultMaxPerCategory},
		{"negative", -3, DefaultMaxPerCategory},
		{"explicit", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Recommend(context.Background(), &model.RecommendationRequest{
				Profile:               &model.ReaderProfile{},
				MaxResultsPerCategory: tt.in,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, gw.lastParams.MaxPerCategory)
		})
	}
}

func TestRecommendSanitizesBeforeGateway(t *testing.T) {
	gw := &countingGateway{}
	svc := NewService(gw)

	_, err := svc.Recommend(context.Background(), &model.RecommendationRequest{
		Profile:       &model.ReaderProfile{Interests: []string{"spa\x00ce"}},
		ExcludeTitles: []string{"Du\x1fne"},
		Seed:          "se\x7fed",
	})
	require.NoError(t, err)

	require.NotNil(t, gw.lastProfile)
	assert.Equal(t, []string{"space"}, gw.lastProfile.Interests)
	assert.Equal(t, []string{"Dune"}, gw.lastParams.ExcludeTitles)
	assert.Equal(t, "seed", gw.lastParams.Seed)
}

func TestRecommendBuildsPromptPair(t *testing.T) {
	gw := &countingGateway{}
	svc := NewService(gw)

	_, err := svc.Recommend(context.Background(), &model.RecommendationRequest{
		Profile:               &model.ReaderProfile{Interests: []string{"space"}},
		ExcludeTitles:         []string{"Dune"},
		MaxResultsPerCategory: 3,
	})
	require.NoError(t, err)

	assert.True(t, strings.Contains(gw.lastParams.SystemText, "librarian"))
	assert.Contains(t, gw.lastParams.Instruction, "Suggest up to 3 fiction")
	assert.Contains(t, gw.lastParams.Instruction, "- Interests: space\n")
	assert.Contains(t, gw.lastParams.Instruction, "Dune")
}

func TestRecommendEchoesExclusions(t *testing.T) {
	gw := &countingGateway{result: &model.RecommendationResult{
		Metadata: &model.Metadata{RequestID: "id"},
	}}
	svc := NewService(gw)

	result, err := svc.Recommend(context.Background(), &model.RecommendationRequest{
		Profile:       &model.ReaderProfile{},
		ExcludeTitles: []string{"Holes"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Holes"}, result.ExcludedTitles)
}

func TestRecommendPropagatesGatewayErrors(t *testing.T) {
	wantErr := &gateway.UpstreamError{Msg: "boom"}
	gw := &countingGateway{err: wantErr}
	svc := NewService(gw)

	_, err := svc.Recommend(context.Background(), &model.RecommendationRequest{
		Profile: &model.ReaderProfile{},
	})
	require.Error(t, err)

	var upstreamErr *gateway.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 1, gw.calls)
}

func TestGatewayName(t *testing.T) {
	svc := NewService(&countingGateway{})
	assert.Equal(t, "fake", svc.GatewayName())
}
