package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/epistleapp/epistle/internal/entities"
	"github.com/epistleapp/epistle/internal/genai"
)

// ContentBuilder is the slice of the reading service pregeneration needs.
type ContentBuilder interface {
	GetDaily(ctx context.Context, day int, lang entities.Language) (*entities.ReadingBundle, error)
}

// PregenerateTask warms the content cache for one (day, language) pair ahead
// of the first reader.
type PregenerateTask struct {
	Day      int               `json:"day"`
	Language entities.Language `json:"language"`
}

// Config returns the queue configuration for pregeneration tasks. Rate-limit
// rejections get a long backoff so retries land after the quota window.
func (t PregenerateTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "pregenerate",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     3 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PregenerateProcessor creates a processor function for PregenerateTask.
func PregenerateProcessor(builder ContentBuilder) backlite.QueueProcessor[PregenerateTask] {
	return func(ctx context.Context, task PregenerateTask) error {
		if builder == nil {
			return fmt.Errorf("content builder not configured")
		}
		if !task.Language.Valid() {
			return fmt.Errorf("unsupported language %q", task.Language)
		}

		if _, err := builder.GetDaily(ctx, task.Day, task.Language); err != nil {
			if genai.IsRateLimited(err) {
				return fmt.Errorf("pregenerate day %d (%s) rate limited: %w", task.Day, task.Language, err)
			}
			return fmt.Errorf("pregenerate day %d (%s): %w", task.Day, task.Language, err)
		}

		log.Printf("[TASK] Pregenerated content for day %d (%s)", task.Day, task.Language)
		return nil
	}
}

// NewPregenerateQueue creates a backlite queue for pregeneration tasks.
func NewPregenerateQueue(builder ContentBuilder) backlite.Queue {
	return backlite.NewQueue(PregenerateProcessor(builder))
}
