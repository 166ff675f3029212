package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"book-scout/backend/internal/model"
)

func TestBuildInstructionDefaults(t *testing.T) {
	b := NewBuilder()
	got := b.BuildInstruction(&model.ReaderProfile{}, 5, nil, "")

	assert.Contains(t, got, "Suggest up to 5 fiction and up to 5 nonfiction books")
	assert.Contains(t, got, "- Age: unspecified\n")
	assert.Contains(t, got, "- Fiction preference: both\n")
	assert.Contains(t, got, "- Interests: (none)\n")
	assert.Contains(t, got, "- Favorite video games: (none)\n")
	assert.Contains(t, got, "- No titles are excluded.\n")
	assert.NotContains(t, got, "Variation seed")
}

func TestBuildInstructionProfileFields(t *testing.T) {
	age := 8
	minutes := 120
	price := 15.0
	p := &model.ReaderProfile{
		Age:               &age,
		Gender:            "girl",
		FictionPreference: "nonfiction",
		Interests:         []string{"space", "dinosaurs"},
		ReadingLevel:      "intermediate",
		MinutesPerWeek:    &minutes,
		MaxPrice:          &price,
		FavoriteAuthors:   []string{"Mo Willems"},
		Surprise:          true,
	}

	got := NewBuilder().BuildInstruction(p, 3, []string{"Dune", "It"}, "abc-123")

	assert.Contains(t, got, "Suggest up to 3 fiction and up to 3 nonfiction books")
	assert.Contains(t, got, "- Age: 8\n")
	assert.Contains(t, got, "- Gender: girl\n")
	assert.Contains(t, got, "- Fiction preference: nonfiction\n")
	assert.Contains(t, got, "- Interests: space, dinosaurs\n")
	assert.Contains(t, got, "- Minutes of reading per week: 120\n")
	assert.Contains(t, got, "- Maximum price: 15.00\n")
	assert.Contains(t, got, "- Favorite authors: Mo Willems\n")
	assert.Contains(t, got, "- Open to surprises: yes\n")
	assert.Contains(t, got, "- Do not recommend any of these titles: Dune; It\n")
	assert.Contains(t, got, "- Variation seed: abc-123\n")
}

func TestBuildInstructionDeclaresContract(t *testing.T) {
	got := NewBuilder().BuildInstruction(&model.ReaderProfile{}, 4, nil, "")

	// The schema block and the output rules are the externally visible
	// contract; downstream replay tooling depends on them.
	assert.Contains(t, got, ResponseSchema)
	assert.Contains(t, got, `"results"`)
	assert.Contains(t, got, `"fiction"`)
	assert.Contains(t, got, `"nonfiction"`)
	assert.Contains(t, got, `Include at most 4 books in each of "fiction" and "nonfiction".`)
	assert.Contains(t, got, "Use null for optional fields you do not know.")
	assert.Contains(t, got, "Keep every short_description within 250 characters.")
	assert.Contains(t, got, "Respond with JSON only")
}

func TestBuildInstructionInvalidPreferenceFallsBack(t *testing.T) {
	got := NewBuilder().BuildInstruction(&model.ReaderProfile{FictionPreference: "comics"}, 5, nil, "")
	assert.Contains(t, got, "- Fiction preference: both\n")
}

func TestBuildInstructionDeterministic(t *testing.T) {
	age := 10
	p := &model.ReaderProfile{Age: &age, Interests: []string{"robots"}}
	b := NewBuilder()

	first := b.BuildInstruction(p, 2, []string{"Holes"}, "seed")
	second := b.BuildInstruction(p, 2, []string{"Holes"}, "seed")
	assert.Equal(t, first, second)
}

func TestBuildSystemPrompt(t *testing.T) {
	got := NewBuilder().BuildSystemPrompt()
	assert.Equal(t, SystemPrompt, got)
	assert.True(t, strings.Contains(got, "librarian"))
}
