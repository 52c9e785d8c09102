package service

import (
	"github.com/alligatorO15/expense-manager/internal/repository"
)

type Services struct {
	Income      IncomeService
	Transaction TransactionService
	Analytics   AnalyticsService
	Export      ExportService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Income:      NewIncomeService(repos.Income),
		Transaction: NewTransactionService(repos.TxManager, repos.Transaction),
		Analytics:   NewAnalyticsService(repos.Income, repos.Transaction),
		Export:      NewExportService(repos.Transaction),
	}
}
