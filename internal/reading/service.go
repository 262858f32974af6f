// Package reading orchestrates the daily content pipeline: cache lookup,
// canonical text fetch, generation, image generation and archival.
package reading

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/epistleapp/epistle/internal/contentcache"
	"github.com/epistleapp/epistle/internal/entities"
	"github.com/epistleapp/epistle/internal/genai"
	"github.com/epistleapp/epistle/internal/schedule"
	"github.com/epistleapp/epistle/internal/scripture"
)

// ScriptureSource fetches canonical verse text. Failures are tolerated; the
// generated passage stands in.
type ScriptureSource interface {
	FetchChapter(ctx context.Context, bookCode string, chapter int) ([]entities.Verse, error)
}

// ProgressStore is the slice of the sync layer Complete needs.
type ProgressStore interface {
	WriteArchive(ctx context.Context, day int, entry entities.ArchivedReading) error
	ReadStatus(ctx context.Context) entities.MeditationRecord
	ToggleStatus(ctx context.Context, day int, rating entities.MeditationStatus) (entities.MeditationRecord, error)
}

// Service builds and memoizes daily reading bundles.
type Service struct {
	config    schedule.Config
	cache     *contentcache.Cache
	generator genai.Generator
	canon     ScriptureSource
	progress  ProgressStore
	now       func() time.Time
}

func New(config schedule.Config, cache *contentcache.Cache, generator genai.Generator, canon ScriptureSource, progress ProgressStore) *Service {
	return &Service{
		config:    config,
		cache:     cache,
		generator: generator,
		canon:     canon,
		progress:  progress,
		now:       time.Now,
	}
}

// GetDaily returns the content bundle for (day, lang), generating and caching
// it on a miss. A cache hit never touches the generator. Concurrent misses for
// the same day may each generate; last write wins.
func (s *Service) GetDaily(ctx context.Context, day int, lang entities.Language) (*entities.ReadingBundle, error) {
	if day < 1 {
		return nil, fmt.Errorf("invalid day %d", day)
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}

	bundle, err := s.cache.Get(day, lang)
	if err == nil {
		return bundle, nil
	}
	if !errors.Is(err, contentcache.ErrMiss) {
		log.Printf("reading: cache lookup for day %d failed, regenerating: %v", day, err)
	}

	reading := s.config.ReadingForDay(day, lang)

	generated, err := s.generator.GenerateReadingContent(ctx, contentRequest(reading, lang))
	if err != nil {
		return nil, fmt.Errorf("generate content for day %d: %w", day, err)
	}

	passage := generated.Passage
	if lang == entities.LanguageKorean && s.canon != nil {
		if canonical := s.canonicalPassage(ctx, day); canonical != "" {
			passage = canonical
		}
	}

	bundle = &entities.ReadingBundle{
		Passage:         passage,
		MeditationGuide: generated.MeditationGuide,
		Context:         generated.Context,
		Intention:       generated.Intention,
		ImagePrompt:     generated.ImagePrompt,
	}

	if generated.ImagePrompt != "" {
		image := s.generator.GenerateContextImage(ctx, genai.ImageRequest{
			InitialPrompt:   generated.ImagePrompt,
			FallbackContext: generated.Context,
			Language:        lang,
		})
		if image != "" {
			bundle.ContextImageURL = &image
		}
	}

	if err := s.cache.Put(day, lang, bundle); err != nil {
		log.Printf("reading: caching day %d (%s) failed: %v", day, lang, err)
	}
	return bundle, nil
}

// Complete archives the day's bundle and marks the day "good" unless the user
// already rated it good. The bundle normally comes straight from cache.
func (s *Service) Complete(ctx context.Context, day int, lang entities.Language) (*entities.ArchivedReading, error) {
	bundle, err := s.GetDaily(ctx, day, lang)
	if err != nil {
		return nil, err
	}

	entry := entities.ArchivedReading{
		Day:              day,
		DateSaved:        s.now().Format("2006-01-02"),
		ReadingReference: s.config.ReadingReference(day, lang),
		Passage:          bundle.Passage,
		MeditationGuide:  bundle.MeditationGuide,
		Context:          bundle.Context,
		Intention:        bundle.Intention,
		ContextImageURL:  bundle.ContextImageURL,
	}
	if err := s.progress.WriteArchive(ctx, day, entry); err != nil {
		return nil, fmt.Errorf("archive day %d: %w", day, err)
	}

	if s.progress.ReadStatus(ctx)[day] != entities.MeditationGood {
		if _, err := s.progress.ToggleStatus(ctx, day, entities.MeditationGood); err != nil {
			log.Printf("reading: auto-rating day %d failed: %v", day, err)
		}
	}
	return &entry, nil
}

// HeaderImage returns the app header background, generating it once and
// serving the cached data URI afterwards. The image is language-independent.
func (s *Service) HeaderImage(ctx context.Context) (string, error) {
	if cached := s.cache.GetImage(contentcache.HeaderImageKey); cached != "" {
		return cached, nil
	}

	image := s.generator.GenerateContextImage(ctx, genai.ImageRequest{
		InitialPrompt: genai.HeaderImagePrompt,
	})
	if image == "" {
		return "", errors.New("header image unavailable")
	}

	s.cache.SetImage(contentcache.HeaderImageKey, image)
	return image, nil
}

// JourneyMap returns the route map image for one mission journey, cached per
// (journey, language) like reading bundles.
func (s *Service) JourneyMap(ctx context.Context, journeyID int, lang entities.Language) (string, error) {
	if !lang.Valid() {
		return "", fmt.Errorf("unsupported language %q", lang)
	}
	journey := JourneyByID(journeyID)
	if journey == nil {
		return "", fmt.Errorf("journey %d: %w", journeyID, ErrUnknownJourney)
	}

	key := contentcache.JourneyMapKey(journeyID, lang)
	if cached := s.cache.GetImage(key); cached != "" {
		return cached, nil
	}

	cities := make([]string, len(journey.Cities))
	for i, city := range journey.Cities {
		cities[i] = city.In(lang)
	}

	image := s.generator.GenerateContextImage(ctx, genai.ImageRequest{
		InitialPrompt: genai.JourneyMapPrompt(journey.Title.In(lang), cities),
		Language:      lang,
	})
	if image == "" {
		return "", fmt.Errorf("journey map %d unavailable", journeyID)
	}

	s.cache.SetImage(key, image)
	return image, nil
}

// ExplainSelection forwards a passage selection to the generator.
func (s *Service) ExplainSelection(ctx context.Context, selection, passage string, lang entities.Language) (string, error) {
	if strings.TrimSpace(selection) == "" {
		return "", errors.New("empty selection")
	}
	return s.generator.ExplainSelection(ctx, selection, passage, lang)
}

// contentRequest maps a day's chapter pair onto a generation request. Pairs
// within one work collapse to a chapter range.
func contentRequest(reading entities.DailyReading, lang entities.Language) genai.ContentRequest {
	req := genai.ContentRequest{
		Book:         reading[0].Book,
		ChapterStart: reading[0].Chapter,
		ChapterEnd:   reading[1].Chapter,
		Language:     lang,
	}
	if reading[0].Book != reading[1].Book {
		req.SecondBook = reading[1].Book
	}
	return req
}

// canonicalPassage fetches the day's two chapters from the canonical source
// and renders them as one labelled passage. Any failure returns "" and the
// generated passage is kept.
func (s *Service) canonicalPassage(ctx context.Context, day int) string {
	korean := s.config.ReadingForDay(day, entities.LanguageKorean)
	english := s.config.ReadingForDay(day, entities.LanguageEnglish)

	sections := make([]string, 0, len(korean))
	for i := range korean {
		verses, err := s.canon.FetchChapter(ctx, scripture.BookCode(english[i].Book), korean[i].Chapter)
		if err != nil {
			log.Printf("reading: canonical text for %s %d unavailable: %v", english[i].Book, korean[i].Chapter, err)
			return ""
		}
		if len(verses) == 0 {
			return ""
		}
		header := fmt.Sprintf("%s %d장", korean[i].Book, korean[i].Chapter)
		sections = append(sections, header+"\n"+scripture.FormatPassage(verses))
	}
	return strings.Join(sections, "\n\n")
}
