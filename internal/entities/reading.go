package entities

// Language selects which localisation of book names and generated content to use.
type Language string

const (
	LanguageKorean  Language = "ko"
	LanguageEnglish Language = "en"
)

// Valid reports whether the language is one of the supported localisations.
func (l Language) Valid() bool {
	return l == LanguageKorean || l == LanguageEnglish
}

// LocalizedText holds the Korean and English renderings of a display string.
type LocalizedText struct {
	Ko string `json:"ko"`
	En string `json:"en"`
}

// In returns the rendering for the given language, defaulting to Korean.
func (t LocalizedText) In(lang Language) string {
	if lang == LanguageEnglish {
		return t.En
	}
	return t.Ko
}

// Reading is a single (book, chapter) unit of the reading plan.
type Reading struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
}

// DailyReading is the ordered pair of chapters assigned to one day.
type DailyReading [2]Reading

// ScheduleItem is one row of the full schedule listing.
type ScheduleItem struct {
	Day     int    `json:"day"`
	Reading string `json:"reading"`
}

// ReadingBundle is the generated content for one (day, language) pair.
// ContextImageURL is nil when image generation failed or was skipped.
type ReadingBundle struct {
	Passage         string  `json:"passage"`
	MeditationGuide string  `json:"meditationGuide"`
	Context         string  `json:"context"`
	Intention       string  `json:"intention"`
	ImagePrompt     string  `json:"imagePrompt"`
	ContextImageURL *string `json:"contextImageUrl"`
}

// Verse is a single numbered verse of canonical text.
type Verse struct {
	Number int    `json:"verse"`
	Text   string `json:"text"`
}
