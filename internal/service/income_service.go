package service

import (
	"context"
	"strings"
	"time"

	"github.com/alligatorO15/expense-manager/internal/models"
	"github.com/alligatorO15/expense-manager/internal/period"
	"github.com/alligatorO15/expense-manager/internal/repository"
)

type IncomeService interface {
	Set(ctx context.Context, input *models.IncomeSet) (*models.Income, error)
}

type incomeService struct {
	incomeRepo repository.IncomeRepository
}

func NewIncomeService(incomeRepo repository.IncomeRepository) IncomeService {
	return &incomeService{incomeRepo: incomeRepo}
}

// Set записывает доход за текущий месяц.
// Повторный вызов в том же месяце перезаписывает сумму и источник.
func (s *incomeService) Set(ctx context.Context, input *models.IncomeSet) (*models.Income, error) {
	now := time.Now().UTC()

	income := &models.Income{
		Month:     period.MonthKey(now),
		Amount:    input.Amount,
		Source:    strings.TrimSpace(input.Source),
		UpdatedAt: now,
	}

	if err := s.incomeRepo.Upsert(ctx, income); err != nil {
		return nil, err
	}
	return income, nil
}
