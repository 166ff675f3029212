// Package sanitize cleans user-supplied profile text before it is
// interpolated into a prompt or echoed back in a response.
// Reference: OWASP LLM Prompt Injection Prevention Cheat Sheet
// https://cheatsheetseries.owasp.org/cheatsheets/LLM_Prompt_Injection_Prevention_Cheat_Sheet.html
package sanitize

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"book-scout/backend/internal/model"
)

// String removes all C0 (U+0000-U+001F) and C1 (U+007F-U+009F) control
// characters and normalizes the remainder to NFC form. Control characters
// are dropped first so that normalization cannot recombine sequences a
// second pass would see differently; the result is idempotent.
func String(s string) string {
	stripped := strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
			return -1
		}
		return r
	}, s)
	return norm.NFC.String(stripped)
}

// Strings applies String element-wise. A nil slice stays nil.
func Strings(values []string) []string {
	if values == nil {
		return nil
	}
	cleaned := make([]string, len(values))
	for i, v := range values {
		cleaned[i] = String(v)
	}
	return cleaned
}

// Profile returns a sanitized copy of the profile. Non-string fields pass
// through unchanged; a nil profile stays nil.
func Profile(p *model.ReaderProfile) *model.ReaderProfile {
	if p == nil {
		return nil
	}
	clean := *p
	clean.Gender = String(p.Gender)
	clean.FictionPreference = String(p.FictionPreference)
	clean.ReadingLevel = String(p.ReadingLevel)
	clean.PreferredFormat = String(p.PreferredFormat)
	clean.Language = String(p.Language)
	clean.AccessibilityNeeds = String(p.AccessibilityNeeds)
	clean.FavoriteVideoGames = Strings(p.FavoriteVideoGames)
	clean.FavoriteBoardGames = Strings(p.FavoriteBoardGames)
	clean.MovieGenres = Strings(p.MovieGenres)
	clean.Interests = Strings(p.Interests)
	clean.FavoriteAuthors = Strings(p.FavoriteAuthors)
	clean.DislikedThemes = Strings(p.DislikedThemes)
	return &clean
}
