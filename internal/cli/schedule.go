package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/epistleapp/epistle/internal/config"
	"github.com/epistleapp/epistle/internal/entities"
	"github.com/epistleapp/epistle/internal/schedule"
)

type ScheduleCommand struct {
	Language         string
	AnchorOffsetDays int
}

func NewScheduleCommand() *ScheduleCommand {
	return &ScheduleCommand{}
}

func (cmd *ScheduleCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)

	fs.StringVar(&cmd.Language, "lang", "ko", "Language for book names (ko or en)")
	fs.IntVar(&cmd.AnchorOffsetDays, "anchor-offset", config.DefaultAnchorOffsetDays, "Days already elapsed in the cycle as of today")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s schedule [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the full reading cycle and mark today's position.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s schedule\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s schedule -lang en\n", os.Args[0])
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

func (cmd *ScheduleCommand) Run() error {
	lang := entities.Language(cmd.Language)
	cfg := schedule.NewConfig(time.Now(), cmd.AnchorOffsetDays, schedule.BuildCorpus(schedule.PaulineEpistles))
	today := cfg.DayNumberForDate(time.Now())

	fmt.Printf("Reading cycle: %d days, two chapters per day\n\n", cfg.TotalDays())
	for _, item := range cfg.FullSchedule(lang) {
		marker := "  "
		if item.Day == today {
			marker = "> "
		}
		fmt.Printf("%sDay %2d  %s\n", marker, item.Day, item.Reading)
	}
	fmt.Printf("\nToday is day %d: %s\n", today, cfg.ReadingReference(today, lang))

	return nil
}
