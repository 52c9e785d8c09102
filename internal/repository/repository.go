package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	TxManager   TxManager
	Income      IncomeRepository
	Transaction TransactionRepository
}

func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		TxManager:   NewTxManager(pool),
		Income:      NewIncomeRepository(pool),
		Transaction: NewTransactionRepository(pool),
	}
}
