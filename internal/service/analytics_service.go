package service

import (
	"context"
	"sort"
	"time"

	"github.com/alligatorO15/expense-manager/internal/models"
	"github.com/alligatorO15/expense-manager/internal/period"
	"github.com/alligatorO15/expense-manager/internal/repository"
	"github.com/shopspring/decimal"
)

type AnalyticsService interface {
	StatsSnapshot(ctx context.Context, now time.Time) (*models.Stats, error)
	Breakdown(ctx context.Context, start, end *time.Time) (*models.AnalyticsReport, error)
	TimeSeries(ctx context.Context, start, end *time.Time) ([]models.TimeSeriesPoint, error)
}

type analyticsService struct {
	incomeRepo      repository.IncomeRepository
	transactionRepo repository.TransactionRepository
}

func NewAnalyticsService(incomeRepo repository.IncomeRepository, transactionRepo repository.TransactionRepository) AnalyticsService {
	return &analyticsService{
		incomeRepo:      incomeRepo,
		transactionRepo: transactionRepo,
	}
}

// StatsSnapshot шесть итогов дашборда относительно момента now.
// Инвестиции не входят в расходы и считаются отдельно.
func (s *analyticsService) StatsSnapshot(ctx context.Context, now time.Time) (*models.Stats, error) {
	now = now.UTC()
	startOfMonth := period.StartOfMonth(now)
	startOfYear := period.StartOfYear(now)
	investment := models.TransactionTypeInvestment

	stats := &models.Stats{}

	income, err := s.incomeRepo.GetByMonth(ctx, period.MonthKey(now))
	if err != nil {
		return nil, err
	}
	if income != nil {
		stats.MTDIncome = income.Amount
	}

	// суммируются все месяцы с префиксом текущего года,
	// включая записанные наперед
	yearIncomes, err := s.incomeRepo.GetByYear(ctx, now.Year())
	if err != nil {
		return nil, err
	}
	for _, in := range yearIncomes {
		stats.YTDIncome = stats.YTDIncome.Add(in.Amount)
	}

	stats.MTDExpenses, err = s.transactionRepo.SumByFilter(ctx, &models.TransactionFilter{
		DateFrom:    &startOfMonth,
		ExcludeType: &investment,
	})
	if err != nil {
		return nil, err
	}

	stats.YTDExpenses, err = s.transactionRepo.SumByFilter(ctx, &models.TransactionFilter{
		DateFrom:    &startOfYear,
		ExcludeType: &investment,
	})
	if err != nil {
		return nil, err
	}

	stats.MTDInvestments, err = s.transactionRepo.SumByFilter(ctx, &models.TransactionFilter{
		DateFrom: &startOfMonth,
		Type:     &investment,
	})
	if err != nil {
		return nil, err
	}

	stats.YTDInvestments, err = s.transactionRepo.SumByFilter(ctx, &models.TransactionFilter{
		DateFrom: &startOfYear,
		Type:     &investment,
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// Breakdown разбивки по категории, способу оплаты и тегам за период.
// Обе границы опциональны и включительны.
func (s *analyticsService) Breakdown(ctx context.Context, start, end *time.Time) (*models.AnalyticsReport, error) {
	investment := models.TransactionTypeInvestment
	filter := &models.TransactionFilter{
		DateFrom:    start,
		DateTo:      end,
		ExcludeType: &investment,
	}

	byCategory, err := s.transactionRepo.SumGrouped(ctx, filter, "category")
	if err != nil {
		return nil, err
	}

	byPaymentMode, err := s.transactionRepo.SumGrouped(ctx, filter, "payment_mode")
	if err != nil {
		return nil, err
	}

	// теги разворачиваются по одной транзакции: сумма попадает в каждый ее тег,
	// транзакции без тегов сюда не входят
	tagged, err := s.transactionRepo.GetByFilter(ctx, &models.TransactionFilter{
		DateFrom:    start,
		DateTo:      end,
		ExcludeType: &investment,
		TaggedOnly:  true,
	})
	if err != nil {
		return nil, err
	}

	byTag := make(map[string]decimal.Decimal)
	for _, tx := range tagged {
		for _, tag := range tx.Tags {
			byTag[tag] = byTag[tag].Add(tx.Amount)
		}
	}

	return &models.AnalyticsReport{
		ByCategory:    sortedBreakdown(byCategory),
		ByPaymentMode: sortedBreakdown(byPaymentMode),
		ByTag:         sortedBreakdown(byTag),
	}, nil
}

// TimeSeries дневные суммы расходов за период, по возрастанию даты.
// Дни без транзакций опускаются.
func (s *analyticsService) TimeSeries(ctx context.Context, start, end *time.Time) ([]models.TimeSeriesPoint, error) {
	investment := models.TransactionTypeInvestment
	filter := &models.TransactionFilter{
		DateFrom:    start,
		DateTo:      end,
		ExcludeType: &investment,
	}

	days, err := s.transactionRepo.SumByDay(ctx, filter)
	if err != nil {
		return nil, err
	}

	points := make([]models.TimeSeriesPoint, 0, len(days))
	for day, total := range days {
		points = append(points, models.TimeSeriesPoint{Date: day, Total: total})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points, nil
}

// sortedBreakdown переводит сгруппированные суммы в список,
// отсортированный по убыванию суммы (при равенстве - по имени)
func sortedBreakdown(sums map[string]decimal.Decimal) []models.BreakdownItem {
	items := make([]models.BreakdownItem, 0, len(sums))
	for name, total := range sums {
		items = append(items, models.BreakdownItem{Name: name, Total: total})
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].Total.Equal(items[j].Total) {
			return items[i].Total.GreaterThan(items[j].Total)
		}
		return items[i].Name < items[j].Name
	})

	return items
}
