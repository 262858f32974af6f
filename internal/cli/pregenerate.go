package cli

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/epistleapp/epistle/internal/config"
	"github.com/epistleapp/epistle/internal/contentcache"
	"github.com/epistleapp/epistle/internal/database"
	"github.com/epistleapp/epistle/internal/entities"
	"github.com/epistleapp/epistle/internal/genai"
	"github.com/epistleapp/epistle/internal/localstore"
	"github.com/epistleapp/epistle/internal/reading"
	"github.com/epistleapp/epistle/internal/schedule"
	"github.com/epistleapp/epistle/internal/scripture"
)

type PregenerateCommand struct {
	Day          int
	Language     string
	DatabasePath string
	Timeout      time.Duration
}

func NewPregenerateCommand() *PregenerateCommand {
	return &PregenerateCommand{}
}

func (cmd *PregenerateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("pregenerate", flag.ExitOnError)

	fs.IntVar(&cmd.Day, "day", 0, "Day of the cycle to generate (default: today)")
	fs.StringVar(&cmd.Language, "lang", "ko", "Language to generate (ko or en)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.DurationVar(&cmd.Timeout, "timeout", 3*time.Minute, "Generation timeout")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s pregenerate [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate and cache the reading content for a day without starting the server.\n")
		fmt.Fprintf(os.Stderr, "Requires GENAI_API_KEY to be set.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s pregenerate\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s pregenerate -day 27 -lang en\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if !entities.Language(cmd.Language).Valid() {
		fs.Usage()
		return fmt.Errorf("unsupported language: %s", cmd.Language)
	}

	return nil
}

func (cmd *PregenerateCommand) Run() error {
	cfg := config.NewConfig()
	if cfg.GenAI.APIKey == "" {
		return fmt.Errorf("GENAI_API_KEY is not set")
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	generator, err := genai.NewOpenAIGenerator(genai.Settings{
		APIKey:     cfg.GenAI.APIKey,
		BaseURL:    cfg.GenAI.BaseURL,
		ChatModel:  cfg.GenAI.ChatModel,
		ImageModel: cfg.GenAI.ImageModel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize content generator: %w", err)
	}

	cache := contentcache.New(localstore.New(db.DB, cfg.Store.CapacityBytes))
	scheduleCfg := schedule.NewConfig(time.Now(), cfg.Schedule.AnchorOffsetDays, schedule.BuildCorpus(schedule.PaulineEpistles))
	canon := scripture.NewClient(cfg.Scripture.BaseURL)

	// Archival and status are server concerns; the command only warms the
	// cache, so no progress store is wired.
	svc := reading.New(scheduleCfg, cache, generator, canon, nil)

	day := cmd.Day
	if day == 0 {
		day = scheduleCfg.DayNumberForDate(time.Now())
	}
	lang := entities.Language(cmd.Language)

	fmt.Printf("Generating day %d (%s): %s\n", day, lang, scheduleCfg.ReadingReference(day, lang))

	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	bundle, err := svc.GetDaily(ctx, day, lang)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	fmt.Printf("Cached %d characters of passage text\n", len(bundle.Passage))
	if bundle.ContextImageURL != nil {
		fmt.Printf("Context image generated\n")
	}

	return nil
}
