package schedule

import (
	"fmt"
	"time"

	"github.com/epistleapp/epistle/internal/entities"
)

// DefaultAnchorOffsetDays places the process launch date 26 days into the
// cycle, so that "today" starts at day 27 (Romans 10-11).
const DefaultAnchorOffsetDays = 26

// Config carries everything the day arithmetic needs. Construct it once and
// pass it around; there is no package-level anchor.
type Config struct {
	Anchor time.Time
	Corpus []Unit
}

// NewConfig builds a Config anchored offsetDays before now, truncated to
// local midnight.
func NewConfig(now time.Time, offsetDays int, corpus []Unit) Config {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Config{
		Anchor: midnight.AddDate(0, 0, -offsetDays),
		Corpus: corpus,
	}
}

// TotalDays is the length of one full cycle: two chapters per day, the odd
// final chapter sharing its day with the wrapped-around first chapter.
func (c Config) TotalDays() int {
	return (len(c.Corpus) + 1) / 2
}

// DayNumberForDate maps a calendar date to a 1-based day of the cycle.
// Dates before the anchor clamp to day 1; later dates wrap modulo the cycle
// length so the plan repeats indefinitely.
func (c Config) DayNumberForDate(date time.Time) int {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.Anchor.Location())
	delta := int(midnight.Sub(c.Anchor).Hours() / 24)
	if delta < 0 {
		delta = 0
	}
	return delta%c.TotalDays() + 1
}

// ReadingForDay returns the two-chapter reading for any positive day number.
// Indices always wrap around the corpus, so day TotalDays+1 equals day 1 and
// the final day pairs the last unit with the first.
func (c Config) ReadingForDay(day int, lang entities.Language) entities.DailyReading {
	n := len(c.Corpus)
	start := ((day - 1) * 2) % n
	first := c.Corpus[start]
	second := c.Corpus[(start+1)%n]
	return entities.DailyReading{
		{Book: first.Book.In(lang), Chapter: first.Chapter},
		{Book: second.Book.In(lang), Chapter: second.Chapter},
	}
}

// FullSchedule enumerates every day of one cycle with a display string.
// Two chapters of the same work collapse to "Book a-b"; a cross-work pair is
// joined with " & ". Korean appends the 장 chapter suffix.
func (c Config) FullSchedule(lang entities.Language) []entities.ScheduleItem {
	total := c.TotalDays()
	items := make([]entities.ScheduleItem, 0, total)
	for day := 1; day <= total; day++ {
		start := (day - 1) * 2
		first := c.Corpus[start]

		var text string
		if start+1 >= len(c.Corpus) {
			text = formatSingle(first.Book.In(lang), first.Chapter, lang)
		} else {
			second := c.Corpus[start+1]
			firstBook := first.Book.In(lang)
			secondBook := second.Book.In(lang)
			if firstBook == secondBook {
				text = formatRange(firstBook, first.Chapter, second.Chapter, lang)
			} else {
				text = formatSingle(firstBook, first.Chapter, lang) + " & " + formatSingle(secondBook, second.Chapter, lang)
			}
		}

		items = append(items, entities.ScheduleItem{Day: day, Reading: text})
	}
	return items
}

// ReadingReference renders the reading of a day the way archive snapshots
// record it, e.g. "로마서 10-11장" or "Galatians 6 & 1 Thessalonians 1".
func (c Config) ReadingReference(day int, lang entities.Language) string {
	reading := c.ReadingForDay(day, lang)
	if reading[0].Book == reading[1].Book {
		return formatRange(reading[0].Book, reading[0].Chapter, reading[1].Chapter, lang)
	}
	return formatSingle(reading[0].Book, reading[0].Chapter, lang) + " & " + formatSingle(reading[1].Book, reading[1].Chapter, lang)
}

func formatSingle(book string, chapter int, lang entities.Language) string {
	if lang == entities.LanguageKorean {
		return fmt.Sprintf("%s %d장", book, chapter)
	}
	return fmt.Sprintf("%s %d", book, chapter)
}

func formatRange(book string, from, to int, lang entities.Language) string {
	if lang == entities.LanguageKorean {
		return fmt.Sprintf("%s %d-%d장", book, from, to)
	}
	return fmt.Sprintf("%s %d-%d", book, from, to)
}
