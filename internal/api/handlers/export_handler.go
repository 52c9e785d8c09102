package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alligatorO15/expense-manager/internal/period"
	"github.com/alligatorO15/expense-manager/internal/service"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Monthly отдает расходы за месяц одним CSV-файлом
func (h *ExportHandler) Monthly(c *gin.Context) {
	month := c.Query("month")

	data, err := h.exportService.MonthlyCSV(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, period.ErrInvalidMonthFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM", "param": "month"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=expenses-%s.csv", month))
	c.Data(http.StatusOK, "text/csv", data)
}
