package handlers

import (
	"net/http"
	"time"

	"github.com/alligatorO15/expense-manager/internal/period"
	"github.com/alligatorO15/expense-manager/internal/service"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	stats, err := h.analyticsService.StatsSnapshot(c.Request.Context(), time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) GetBreakdown(c *gin.Context) {
	// нераспознанная граница означает "без ограничения", а не 400
	start := period.ParseInstant(c.Query("start"))
	end := period.ParseInstant(c.Query("end"))

	report, err := h.analyticsService.Breakdown(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetTimeSeries(c *gin.Context) {
	start := period.ParseInstant(c.Query("start"))
	end := period.ParseInstant(c.Query("end"))

	points, err := h.analyticsService.TimeSeries(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, points)
}
