package service

import (
	"context"
	"time"

	"github.com/alligatorO15/expense-manager/internal/models"
	"github.com/alligatorO15/expense-manager/internal/repository"
)

const defaultRecentLimit = 20

type TransactionService interface {
	Create(ctx context.Context, input *models.TransactionCreate) (*models.Transaction, error)
	Recent(ctx context.Context, limit int) ([]models.Transaction, error)
}

type transactionService struct {
	txManager       repository.TxManager
	transactionRepo repository.TransactionRepository
}

func NewTransactionService(txManager repository.TxManager, transactionRepo repository.TransactionRepository) TransactionService {
	return &transactionService{
		txManager:       txManager,
		transactionRepo: transactionRepo,
	}
}

// Create создает транзакцию с датой "сейчас" (UTC). Сумма не валидируется.
func (s *transactionService) Create(ctx context.Context, input *models.TransactionCreate) (*models.Transaction, error) {
	tx := &models.Transaction{
		Amount:      input.Amount,
		Category:    input.Category,
		PaymentMode: input.PaymentMode,
		Tags:        input.Tags,
		Remarks:     input.Remarks,
		Type:        input.Type,
		Date:        time.Now().UTC(),
	}

	// значения по умолчанию как на фронте
	if tx.Category == "" {
		tx.Category = "Other"
	}
	if tx.PaymentMode == "" {
		tx.PaymentMode = "Cash"
	}
	if tx.Type == "" {
		tx.Type = models.TransactionTypeExpense
	}
	if tx.Tags == nil {
		tx.Tags = []string{}
	}

	// запись и ее теги коммитятся атомарно
	err := s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return s.transactionRepo.Create(txCtx, tx)
	})
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// Recent последние транзакции, сначала самые свежие
func (s *transactionService) Recent(ctx context.Context, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	filter := &models.TransactionFilter{
		SortOrder: "desc",
		Limit:     limit,
	}
	return s.transactionRepo.GetByFilter(ctx, filter)
}
