// Package scheduler runs the cron jobs that keep the content cache warm.
package scheduler

import (
	"log"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/epistleapp/epistle/internal/entities"
	"github.com/epistleapp/epistle/internal/schedule"
	"github.com/epistleapp/epistle/internal/tasks"
)

// TaskEnqueuer is the slice of the task client the scheduler needs.
type TaskEnqueuer interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
}

// PregenerateScheduler enqueues pregeneration for the current day, in both
// languages, on a cron schedule. Running it just after midnight means the
// first visitor of the day gets a cache hit.
type PregenerateScheduler struct {
	cron     *cron.Cron
	enqueuer TaskEnqueuer
	config   schedule.Config
	spec     string
}

// NewPregenerateScheduler creates a scheduler with the given cron spec,
// e.g. "10 0 * * *" for 00:10 daily.
func NewPregenerateScheduler(enqueuer TaskEnqueuer, cfg schedule.Config, spec string) *PregenerateScheduler {
	return &PregenerateScheduler{
		cron:     cron.New(),
		enqueuer: enqueuer,
		config:   cfg,
		spec:     spec,
	}
}

// Start registers the cron job and begins the schedule.
func (s *PregenerateScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.Run); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Pregeneration scheduled: %s", s.spec)
	return nil
}

// Stop halts the cron schedule. Jobs already enqueued keep running in the
// task queue.
func (s *PregenerateScheduler) Stop() {
	s.cron.Stop()
}

// Run enqueues today's pregeneration tasks immediately. Called by cron and
// usable directly at startup.
func (s *PregenerateScheduler) Run() {
	day := s.config.DayNumberForDate(time.Now())

	for _, lang := range []entities.Language{entities.LanguageKorean, entities.LanguageEnglish} {
		task := tasks.PregenerateTask{Day: day, Language: lang}
		if _, err := s.enqueuer.Add(task).Save(); err != nil {
			log.Printf("Failed to enqueue pregeneration for day %d (%s): %v", day, lang, err)
			continue
		}
		log.Printf("Enqueued pregeneration for day %d (%s)", day, lang)
	}
}
