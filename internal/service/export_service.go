package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"

	"github.com/alligatorO15/expense-manager/internal/models"
	"github.com/alligatorO15/expense-manager/internal/period"
	"github.com/alligatorO15/expense-manager/internal/repository"
)

type ExportService interface {
	MonthlyCSV(ctx context.Context, month string) ([]byte, error)
}

type exportService struct {
	transactionRepo repository.TransactionRepository
}

func NewExportService(transactionRepo repository.TransactionRepository) ExportService {
	return &exportService{transactionRepo: transactionRepo}
}

// MonthlyCSV выгружает расходы за месяц (инвестиции не входят),
// сначала самые свежие. При неверном токене месяца возвращает
// period.ErrInvalidMonthFormat.
func (s *exportService) MonthlyCSV(ctx context.Context, month string) ([]byte, error) {
	start, end, err := period.ParseMonthRange(month)
	if err != nil {
		return nil, err
	}

	investment := models.TransactionTypeInvestment
	items, err := s.transactionRepo.GetByFilter(ctx, &models.TransactionFilter{
		DateFrom:    &start,
		DateBefore:  &end,
		ExcludeType: &investment,
		SortOrder:   "desc",
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	_ = writer.Write([]string{"Date", "Category", "Payment Mode", "Amount", "Tags", "Remarks"})
	for _, tx := range items {
		_ = writer.Write([]string{
			tx.Date.UTC().Format("2006-01-02"),
			tx.Category,
			tx.PaymentMode,
			tx.Amount.String(),
			strings.Join(tx.Tags, ", "),
			tx.Remarks,
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
