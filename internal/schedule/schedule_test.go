package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epistleapp/epistle/internal/entities"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	corpus := BuildCorpus(PaulineEpistles)
	require.Len(t, corpus, 87)
	anchor := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	return Config{Anchor: anchor, Corpus: corpus}
}

func TestBuildCorpus_OrderAndLength(t *testing.T) {
	corpus := BuildCorpus(PaulineEpistles)

	assert.Len(t, corpus, 87)
	assert.Equal(t, "Galatians", corpus[0].Book.En)
	assert.Equal(t, 1, corpus[0].Chapter)
	assert.Equal(t, "Galatians", corpus[5].Book.En)
	assert.Equal(t, 6, corpus[5].Chapter)
	assert.Equal(t, "1 Thessalonians", corpus[6].Book.En)
	assert.Equal(t, 1, corpus[6].Chapter)
	assert.Equal(t, "2 Timothy", corpus[86].Book.En)
	assert.Equal(t, 4, corpus[86].Chapter)
}

func TestTotalDays(t *testing.T) {
	cfg := testConfig(t)
	assert.Equal(t, 44, cfg.TotalDays())
}

func TestReadingForDay_FirstDay(t *testing.T) {
	cfg := testConfig(t)

	reading := cfg.ReadingForDay(1, entities.LanguageEnglish)

	assert.Equal(t, "Galatians", reading[0].Book)
	assert.Equal(t, 1, reading[0].Chapter)
	assert.Equal(t, "Galatians", reading[1].Book)
	assert.Equal(t, 2, reading[1].Chapter)
}

func TestReadingForDay_LastDayWrapsAround(t *testing.T) {
	cfg := testConfig(t)

	reading := cfg.ReadingForDay(44, entities.LanguageEnglish)

	// 87 chapters: day 44 pairs the final chapter with the first.
	assert.Equal(t, "2 Timothy", reading[0].Book)
	assert.Equal(t, 4, reading[0].Chapter)
	assert.Equal(t, "Galatians", reading[1].Book)
	assert.Equal(t, 1, reading[1].Chapter)
}

func TestReadingForDay_CyclicIdempotence(t *testing.T) {
	cfg := testConfig(t)

	for day := 1; day <= cfg.TotalDays(); day++ {
		next := day + cfg.TotalDays()
		assert.Equal(t, cfg.ReadingForDay(day, entities.LanguageKorean), cfg.ReadingForDay(next, entities.LanguageKorean), "day %d vs %d", day, next)
		assert.Equal(t, cfg.ReadingForDay(day, entities.LanguageEnglish), cfg.ReadingForDay(next+cfg.TotalDays(), entities.LanguageEnglish))
	}
}

func TestReadingForDay_Day27IsRomans10And11(t *testing.T) {
	cfg := testConfig(t)

	reading := cfg.ReadingForDay(27, entities.LanguageEnglish)

	assert.Equal(t, "Romans", reading[0].Book)
	assert.Equal(t, 10, reading[0].Chapter)
	assert.Equal(t, "Romans", reading[1].Book)
	assert.Equal(t, 11, reading[1].Chapter)
}

func TestDayNumberForDate(t *testing.T) {
	cfg := testConfig(t)

	assert.Equal(t, 1, cfg.DayNumberForDate(cfg.Anchor))
	assert.Equal(t, 2, cfg.DayNumberForDate(cfg.Anchor.AddDate(0, 0, 1)))
	assert.Equal(t, 44, cfg.DayNumberForDate(cfg.Anchor.AddDate(0, 0, 43)))
	// Wraps back to day 1 after a full cycle.
	assert.Equal(t, 1, cfg.DayNumberForDate(cfg.Anchor.AddDate(0, 0, 44)))
}

func TestDayNumberForDate_BeforeAnchorClampsToDayOne(t *testing.T) {
	cfg := testConfig(t)

	assert.Equal(t, 1, cfg.DayNumberForDate(cfg.Anchor.AddDate(0, 0, -1)))
	assert.Equal(t, 1, cfg.DayNumberForDate(cfg.Anchor.AddDate(-1, 0, 0)))
}

func TestDayNumberForDate_IgnoresTimeOfDay(t *testing.T) {
	cfg := testConfig(t)

	lateEvening := cfg.Anchor.AddDate(0, 0, 5).Add(23*time.Hour + 59*time.Minute)
	assert.Equal(t, 6, cfg.DayNumberForDate(lateEvening))
}

func TestDayNumberForDate_MonotoneWithinCycle(t *testing.T) {
	cfg := testConfig(t)

	prev := 0
	for i := 0; i < cfg.TotalDays(); i++ {
		day := cfg.DayNumberForDate(cfg.Anchor.AddDate(0, 0, i))
		assert.GreaterOrEqual(t, day, 1)
		assert.LessOrEqual(t, day, cfg.TotalDays())
		assert.Greater(t, day, prev)
		prev = day
	}
}

func TestNewConfig_AnchorAtMidnight(t *testing.T) {
	now := time.Date(2024, time.June, 15, 17, 42, 3, 0, time.UTC)
	cfg := NewConfig(now, DefaultAnchorOffsetDays, BuildCorpus(PaulineEpistles))

	expected := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, cfg.Anchor)
	// Launch day lands on day 27: Romans 10-11.
	assert.Equal(t, 27, cfg.DayNumberForDate(now))
}

func TestFullSchedule_MatchesReadingForDay(t *testing.T) {
	cfg := testConfig(t)

	for _, lang := range []entities.Language{entities.LanguageKorean, entities.LanguageEnglish} {
		items := cfg.FullSchedule(lang)
		require.Len(t, items, cfg.TotalDays())

		for i, item := range items {
			require.Equal(t, i+1, item.Day)
			reading := cfg.ReadingForDay(item.Day, lang)

			var want string
			switch {
			case item.Day == cfg.TotalDays() && len(cfg.Corpus)%2 == 1:
				// The final odd chapter stands alone; ReadingForDay pairs
				// it with the wrapped-around first chapter.
				want = formatSingle(reading[0].Book, reading[0].Chapter, lang)
			case reading[0].Book == reading[1].Book:
				want = formatRange(reading[0].Book, reading[0].Chapter, reading[1].Chapter, lang)
			default:
				want = formatSingle(reading[0].Book, reading[0].Chapter, lang) + " & " + formatSingle(reading[1].Book, reading[1].Chapter, lang)
			}
			assert.Equal(t, want, item.Reading, "day %d (%s)", item.Day, lang)
		}
	}
}

func TestFullSchedule_CollapsesSameBookRange(t *testing.T) {
	cfg := testConfig(t)

	ko := cfg.FullSchedule(entities.LanguageKorean)
	en := cfg.FullSchedule(entities.LanguageEnglish)

	assert.Equal(t, "갈라디아서 1-2장", ko[0].Reading)
	assert.Equal(t, "Galatians 1-2", en[0].Reading)
}

func TestFullSchedule_JoinsCrossBookPairs(t *testing.T) {
	cfg := testConfig(t)

	en := cfg.FullSchedule(entities.LanguageEnglish)

	// Day 6 straddles 1 and 2 Thessalonians; day 32 pairs Colossians with Philemon.
	assert.Equal(t, "Galatians 5-6", en[2].Reading)
	assert.Equal(t, "1 Thessalonians 5 & 2 Thessalonians 1", en[5].Reading)
	assert.Equal(t, "Colossians 4 & Philemon 1", en[31].Reading)
}

func TestFullSchedule_FinalOddChapterStandsAlone(t *testing.T) {
	cfg := testConfig(t)

	en := cfg.FullSchedule(entities.LanguageEnglish)
	ko := cfg.FullSchedule(entities.LanguageKorean)

	assert.Equal(t, "2 Timothy 4", en[43].Reading)
	assert.Equal(t, "디모데후서 4장", ko[43].Reading)
}

func TestReadingReference(t *testing.T) {
	cfg := testConfig(t)

	assert.Equal(t, "로마서 10-11장", cfg.ReadingReference(27, entities.LanguageKorean))
	assert.Equal(t, "Romans 10-11", cfg.ReadingReference(27, entities.LanguageEnglish))
	assert.Equal(t, "2 Timothy 4 & Galatians 1", cfg.ReadingReference(44, entities.LanguageEnglish))
}
