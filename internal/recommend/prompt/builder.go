package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"book-scout/backend/internal/model"
)

// Builder constructs the system/instruction text pair sent to the model.
type Builder struct{}

// NewBuilder creates a new prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildSystemPrompt returns the fixed system-role text.
func (b *Builder) BuildSystemPrompt() string {
	return SystemPrompt
}

// BuildInstruction renders the user-role instruction for a sanitized
// profile. The field set and ordering are part of the external contract:
// the same inputs must always yield byte-identical text.
func (b *Builder) BuildInstruction(p *model.ReaderProfile, maxPerCategory int, excludeTitles []string, seed string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Suggest up to %d fiction and up to %d nonfiction books for a young reader with this profile:\n", maxPerCategory, maxPerCategory)
	fmt.Fprintf(&sb, "- Age: %s\n", intField(p.Age))
	fmt.Fprintf(&sb, "- Gender: %s\n", stringField(p.Gender))
	fmt.Fprintf(&sb, "- Fiction preference: %s\n", fictionPreference(p.FictionPreference))
	fmt.Fprintf(&sb, "- Favorite video games: %s\n", listField(p.FavoriteVideoGames))
	fmt.Fprintf(&sb, "- Favorite board games: %s\n", listField(p.FavoriteBoardGames))
	fmt.Fprintf(&sb, "- Movie genres: %s\n", listField(p.MovieGenres))
	fmt.Fprintf(&sb, "- Interests: %s\n", listField(p.Interests))
	fmt.Fprintf(&sb, "- Reading level: %s\n", stringField(p.ReadingLevel))
	fmt.Fprintf(&sb, "- Preferred format: %s\n", stringField(p.PreferredFormat))
	fmt.Fprintf(&sb, "- Minutes of reading per week: %s\n", intField(p.MinutesPerWeek))
	fmt.Fprintf(&sb, "- Language: %s\n", stringField(p.Language))
	fmt.Fprintf(&sb, "- Accessibility needs: %s\n", stringField(p.AccessibilityNeeds))
	fmt.Fprintf(&sb, "- Maximum price: %s\n", priceField(p.MaxPrice))
	fmt.Fprintf(&sb, "- Favorite authors: %s\n", listField(p.FavoriteAuthors))
	fmt.Fprintf(&sb, "- Disliked themes: %s\n", listField(p.DislikedThemes))
	fmt.Fprintf(&sb, "- Open to surprises: %s\n", yesNo(p.Surprise))

	sb.WriteString("\nReturn exactly one JSON object with this shape:\n")
	sb.WriteString(ResponseSchema)
	sb.WriteString("\n\nRules:\n")
	fmt.Fprintf(&sb, "- Include at most %d books in each of \"fiction\" and \"nonfiction\".\n", maxPerCategory)
	if len(excludeTitles) > 0 {
		fmt.Fprintf(&sb, "- Do not recommend any of these titles: %s\n", strings.Join(excludeTitles, "; "))
	} else {
		sb.WriteString("- No titles are excluded.\n")
	}
	sb.WriteString("- Use null for optional fields you do not know.\n")
	sb.WriteString("- Keep every short_description within 250 characters.\n")
	sb.WriteString("- Respond with JSON only: no surrounding prose, no code fences.\n")
	if seed != "" {
		fmt.Fprintf(&sb, "- Variation seed: %s\n", seed)
	}

	return sb.String()
}

func stringField(s string) string {
	if s == "" {
		return "unspecified"
	}
	return s
}

func intField(n *int) string {
	if n == nil {
		return "unspecified"
	}
	return strconv.Itoa(*n)
}

func priceField(p *float64) string {
	if p == nil {
		return "unspecified"
	}
	return strconv.FormatFloat(*p, 'f', 2, 64)
}

func listField(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}

func fictionPreference(pref string) string {
	switch pref {
	case "fiction", "nonfiction", "both":
		return pref
	default:
		return "both"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
