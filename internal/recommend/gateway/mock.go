package gateway

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"book-scout/backend/internal/model"
)

const (
	// MockModelName is reported in metadata for mock results.
	MockModelName = "mock"
	// mockCatalogSize bounds how many entries the mock can return per
	// category regardless of what the caller asks for.
	mockCatalogSize = 5

	defaultAge   = 8
	minAgeLow    = 4
	minReadingTm = 10
)

type mockBook struct {
	title  string
	author string
	year   int
	isbn   string
	desc   string
	tags   []string
}

var mockFiction = [mockCatalogSize]mockBook{
	{
		title:  "The Dragon's Secret",
		author: "Maria Swift",
		year:   2023,
		isbn:   "978-1234567890",
		desc:   "A young wizard discovers a friendly dragon hiding in the school library, leading to an adventure about friendship and courage.",
		tags:   []string{"fantasy", "friendship", "adventure", "dragons"},
	},
	{
		title:  "Rocket Summer",
		author: "Theo Lang",
		year:   2021,
		isbn:   "978-1234567906",
		desc:   "Two cousins spend a summer building a backyard rocket and learn that the best launches need patience, teamwork, and a little luck.",
		tags:   []string{"adventure", "friendship", "summer"},
	},
	{
		title:  "The Map Under the Stairs",
		author: "Priya Anand",
		year:   2022,
		isbn:   "978-1234567913",
		desc:   "A hand-drawn map found under the stairs leads a curious sister and brother through a door into a town that only exists on Tuesdays.",
		tags:   []string{"mystery", "fantasy", "siblings"},
	},
	{
		title:  "Goalkeeper Ghost",
		author: "Sam Okafor",
		year:   2020,
		isbn:   "978-1234567920",
		desc:   "The school football team starts winning when a very polite ghost takes over the goal, but keeping the secret is harder than any match.",
		tags:   []string{"sports", "humor", "ghosts"},
	},
	{
		title:  "Willow and the Weather Machine",
		author: "Nora Finch",
		year:   2024,
		isbn:   "978-1234567937",
		desc:   "When Willow's science-fair project starts actually changing the weather, she has one weekend to undo a snowstorm in July.",
		tags:   []string{"science fiction", "inventions", "school"},
	},
}

var mockNonfiction = [mockCatalogSize]mockBook{
	{
		title:  "Amazing Science Experiments at Home",
		author: "Dr. Sarah Smart",
		year:   2024,
		isbn:   "978-0987654321",
		desc:   "A collection of safe and fun science experiments that can be done with everyday household items.",
		tags:   []string{"science", "experiments", "education", "STEM"},
	},
	{
		title:  "How Animals Build",
		author: "Len Morrow",
		year:   2022,
		isbn:   "978-0987654338",
		desc:   "From beaver dams to termite towers, a photo-filled tour of the engineering tricks animals use to build their homes.",
		tags:   []string{"animals", "nature", "engineering"},
	},
	{
		title:  "A Kid's Guide to the Night Sky",
		author: "Celia Marsh",
		year:   2021,
		isbn:   "978-0987654345",
		desc:   "Star maps, moon phases, and easy backyard astronomy projects for readers who want to find planets without a telescope.",
		tags:   []string{"space", "astronomy", "STEM"},
	},
	{
		title:  "The Story of Everyday Things",
		author: "Marcus Bell",
		year:   2020,
		isbn:   "978-0987654352",
		desc:   "Short illustrated histories of zippers, pencils, traffic lights, and other ordinary objects that turn out to be anything but ordinary.",
		tags:   []string{"history", "inventions", "illustrated"},
	},
	{
		title:  "Draw Like a Scientist",
		author: "Ida Krause",
		year:   2023,
		isbn:   "978-0987654369",
		desc:   "A sketchbook course in observing the world the way field scientists do, with drawing exercises for leaves, bugs, clouds, and bones.",
		tags:   []string{"art", "science", "activities"},
	},
}

// MockGateway synthesizes deterministic recommendations from the profile
// without any external call. It never fails for a well-formed profile.
type MockGateway struct{}

// NewMockGateway creates the mock implementation.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (g *MockGateway) Name() string { return MockModelName }

// Generate returns min(5, maxPerCategory) fiction and nonfiction entries.
// The only non-determinism is the generated request id.
func (g *MockGateway) Generate(_ context.Context, profile *model.ReaderProfile, params Params) (*model.RecommendationResult, error) {
	n := params.MaxPerCategory
	if n > mockCatalogSize {
		n = mockCatalogSize
	}
	if n < 0 {
		n = 0
	}

	why := whyRecommended(profile)
	ageRange := deriveAgeRange(profile)
	readingTime := deriveReadingTime(profile)

	fiction := make([]model.BookEntry, 0, n)
	nonfiction := make([]model.BookEntry, 0, n)
	for i := 0; i < n; i++ {
		fiction = append(fiction, buildEntry(mockFiction[i], why, ageRange, readingTime))
		nonfiction = append(nonfiction, buildEntry(mockNonfiction[i], why, ageRange, readingTime))
	}

	return &model.RecommendationResult{
		Metadata: &model.Metadata{
			RequestID: uuid.NewString(),
			Model:     MockModelName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Results: model.ResultSet{
			Fiction:    fiction,
			Nonfiction: nonfiction,
		},
		ExcludedTitles: params.ExcludeTitles,
		Source:         "mock",
	}, nil
}

func buildEntry(b mockBook, why, ageRange string, readingTime int) model.BookEntry {
	year := b.year
	isbn := b.isbn
	cover := "https://via.placeholder.com/200x300"
	rt := readingTime
	return model.BookEntry{
		Title:              b.title,
		Author:             b.author,
		Year:               &year,
		ISBN:               &isbn,
		CoverURL:           &cover,
		ShortDescription:   truncateDescription(b.desc),
		AgeRange:           ageRange,
		WhyRecommended:     why,
		Tags:               b.tags,
		ReadingTimeMinutes: &rt,
	}
}

// whyRecommended fills the why text from the reader's interests.
func whyRecommended(p *model.ReaderProfile) string {
	if p != nil && len(p.Interests) > 0 {
		return fmt.Sprintf("Matches interests: %s.", strings.Join(p.Interests, ", "))
	}
	return "A good all-around pick for this reader."
}

// deriveAgeRange computes "low-high" as [age-2, age+3] with a floor of 4.
func deriveAgeRange(p *model.ReaderProfile) string {
	age := defaultAge
	if p != nil && p.Age != nil {
		age = *p.Age
	}
	low := age - 2
	if low < minAgeLow {
		low = minAgeLow
	}
	return fmt.Sprintf("%d-%d", low, age+3)
}

// deriveReadingTime computes max(10, round(minutes_per_week/5)).
func deriveReadingTime(p *model.ReaderProfile) int {
	minutes := 0
	if p != nil && p.MinutesPerWeek != nil {
		minutes = *p.MinutesPerWeek
	}
	rt := int(math.Round(float64(minutes) / 5))
	if rt < minReadingTm {
		rt = minReadingTm
	}
	return rt
}

// truncateDescription enforces the 250 character description cap.
func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= 250 {
		return s
	}
	return string(runes[:250])
}
