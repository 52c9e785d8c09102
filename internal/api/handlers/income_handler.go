package handlers

import (
	"net/http"

	"github.com/alligatorO15/expense-manager/internal/models"
	"github.com/alligatorO15/expense-manager/internal/service"
	"github.com/gin-gonic/gin"
)

type IncomeHandler struct {
	incomeService service.IncomeService
}

func NewIncomeHandler(incomeService service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// Set записывает доход за текущий месяц (insert-or-replace)
func (h *IncomeHandler) Set(c *gin.Context) {
	var input models.IncomeSet
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	income, err := h.incomeService.Set(c.Request.Context(), &input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "month": income.Month})
}
