package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alligatorO15/expense-manager/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// in-memory реализации репозиториев, чтобы тестировать сервисы без БД

type fakeTxManager struct{}

func (fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeIncomeRepo struct {
	mu      sync.Mutex
	incomes map[string]models.Income
	err     error
}

func newFakeIncomeRepo() *fakeIncomeRepo {
	return &fakeIncomeRepo{incomes: make(map[string]models.Income)}
}

func (f *fakeIncomeRepo) Upsert(_ context.Context, income *models.Income) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incomes[income.Month] = *income
	return nil
}

func (f *fakeIncomeRepo) GetByMonth(_ context.Context, month string) (*models.Income, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if income, ok := f.incomes[month]; ok {
		return &income, nil
	}
	return nil, nil
}

func (f *fakeIncomeRepo) GetByYear(_ context.Context, year int) ([]models.Income, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	prefix := fmt.Sprintf("%04d-", year)
	var result []models.Income
	for _, income := range f.incomes {
		if strings.HasPrefix(income.Month, prefix) {
			result = append(result, income)
		}
	}
	return result, nil
}

type fakeTransactionRepo struct {
	transactions []models.Transaction
	err          error
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *models.Transaction) error {
	if f.err != nil {
		return f.err
	}
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	f.transactions = append(f.transactions, *tx)
	return nil
}

func matchesFilter(filter *models.TransactionFilter, tx models.Transaction) bool {
	if filter.DateFrom != nil && tx.Date.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && tx.Date.After(*filter.DateTo) {
		return false
	}
	if filter.DateBefore != nil && !tx.Date.Before(*filter.DateBefore) {
		return false
	}
	if filter.Type != nil && tx.Type != *filter.Type {
		return false
	}
	if filter.ExcludeType != nil && tx.Type == *filter.ExcludeType {
		return false
	}
	if filter.TaggedOnly && len(tx.Tags) == 0 {
		return false
	}
	return true
}

func (f *fakeTransactionRepo) GetByFilter(_ context.Context, filter *models.TransactionFilter) ([]models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []models.Transaction
	for _, tx := range f.transactions {
		if matchesFilter(filter, tx) {
			result = append(result, tx)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if filter.SortOrder == "asc" {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Date.After(result[j].Date)
	})
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (f *fakeTransactionRepo) SumByFilter(_ context.Context, filter *models.TransactionFilter) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	for _, tx := range f.transactions {
		if matchesFilter(filter, tx) {
			total = total.Add(tx.Amount)
		}
	}
	return total, nil
}

func (f *fakeTransactionRepo) SumGrouped(_ context.Context, filter *models.TransactionFilter, groupBy string) (map[string]decimal.Decimal, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[string]decimal.Decimal)
	for _, tx := range f.transactions {
		if !matchesFilter(filter, tx) {
			continue
		}
		var key string
		switch groupBy {
		case "category":
			key = tx.Category
		case "payment_mode":
			key = tx.PaymentMode
		default:
			return nil, fmt.Errorf("unsupported group by column: %s", groupBy)
		}
		result[key] = result[key].Add(tx.Amount)
	}
	return result, nil
}

func (f *fakeTransactionRepo) SumByDay(_ context.Context, filter *models.TransactionFilter) (map[string]decimal.Decimal, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[string]decimal.Decimal)
	for _, tx := range f.transactions {
		if matchesFilter(filter, tx) {
			day := tx.Date.UTC().Format("2006-01-02")
			result[day] = result[day].Add(tx.Amount)
		}
	}
	return result, nil
}
