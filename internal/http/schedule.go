package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epistleapp/epistle/internal/schedule"
)

type ScheduleController struct {
	config schedule.Config
}

func NewScheduleController(config schedule.Config) *ScheduleController {
	return &ScheduleController{config: config}
}

// GetSchedule returns the full cycle listing plus today's day number.
// GET /api/schedule?lang=ko
func (sc *ScheduleController) GetSchedule(c *gin.Context) {
	lang, ok := parseLangQuery(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today":      sc.config.DayNumberForDate(time.Now()),
		"total_days": sc.config.TotalDays(),
		"schedule":   sc.config.FullSchedule(lang),
	})
}
