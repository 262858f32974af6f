package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epistleapp/epistle/internal/schedule"
)

func TestNewPregenerateScheduler_ValidSpec(t *testing.T) {
	cfg := schedule.NewConfig(time.Now(), schedule.DefaultAnchorOffsetDays, schedule.BuildCorpus(schedule.PaulineEpistles))

	s := NewPregenerateScheduler(nil, cfg, "10 0 * * *")
	require.NoError(t, s.Start())
	s.Stop()
}

func TestNewPregenerateScheduler_InvalidSpec(t *testing.T) {
	cfg := schedule.NewConfig(time.Now(), schedule.DefaultAnchorOffsetDays, schedule.BuildCorpus(schedule.PaulineEpistles))

	s := NewPregenerateScheduler(nil, cfg, "not a cron spec")
	assert.Error(t, s.Start())
}
