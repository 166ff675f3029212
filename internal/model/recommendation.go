package model

// ReaderProfile describes the young reader a recommendation is built for.
// Every field is optional; the service applies defaults where the prompt
// needs one. Profiles live only for the duration of a request.
type ReaderProfile struct {
	Age                *int     `json:"age,omitempty"`
	Gender             string   `json:"gender,omitempty"`
	FavoriteVideoGames []string `json:"favorite_video_games,omitempty"`
	FavoriteBoardGames []string `json:"favorite_board_games,omitempty"`
	FictionPreference  string   `json:"fiction_preference,omitempty"` // "fiction", "nonfiction" or "both"
	MovieGenres        []string `json:"movie_genres,omitempty"`
	ReadingLevel       string   `json:"reading_level,omitempty"`
	Interests          []string `json:"interests,omitempty"`
	PreferredFormat    string   `json:"preferred_format,omitempty"`
	MinutesPerWeek     *int     `json:"minutes_per_week,omitempty"`
	Language           string   `json:"language,omitempty"`
	AccessibilityNeeds string   `json:"accessibility_needs,omitempty"`
	MaxPrice           *float64 `json:"max_price,omitempty"`
	FavoriteAuthors    []string `json:"favorite_authors,omitempty"`
	DislikedThemes     []string `json:"disliked_themes,omitempty"`
	Surprise           bool     `json:"surprise,omitempty"`
}

// RecommendationRequest is the POST /api/recommend body.
type RecommendationRequest struct {
	Profile               *ReaderProfile `json:"profile"`
	ExcludeTitles         []string       `json:"exclude_titles,omitempty"`
	MaxResultsPerCategory int            `json:"max_results_per_category,omitempty"`
	Seed                  string         `json:"seed,omitempty"`
}

// BookEntry is a single recommended book. Pointer fields are nullable in
// the JSON contract; the model is told to use null when it does not know.
type BookEntry struct {
	Title              string   `json:"title"`
	Author             string   `json:"author"`
	Year               *int     `json:"year"`
	ISBN               *string  `json:"isbn"`
	CoverURL           *string  `json:"cover_url"`
	ShortDescription   string   `json:"short_description"`
	AgeRange           string   `json:"age_range"`
	WhyRecommended     string   `json:"why_recommended"`
	Tags               []string `json:"tags"`
	ReadingTimeMinutes *int     `json:"reading_time_minutes,omitempty"`
	ContentWarnings    []string `json:"content_warnings,omitempty"`
	Confidence         *float64 `json:"confidence,omitempty"`
}

// ResultSet holds the recommended books split by category.
type ResultSet struct {
	Fiction    []BookEntry `json:"fiction"`
	Nonfiction []BookEntry `json:"nonfiction"`
}

// Metadata identifies which call produced a result.
type Metadata struct {
	RequestID string `json:"request_id"`
	Model     string `json:"model"`
	Timestamp string `json:"timestamp"`
}

// RecommendationResult is the 200 response body for /api/recommend.
type RecommendationResult struct {
	Metadata       *Metadata `json:"metadata,omitempty"`
	Results        ResultSet `json:"results"`
	Warnings       []string  `json:"warnings,omitempty"`
	ExcludedTitles []string  `json:"excluded_titles,omitempty"`
	Source         string    `json:"source,omitempty"` // "mock" or "gemini"
}
