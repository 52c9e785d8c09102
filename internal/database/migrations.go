package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(pool *pgxpool.Pool) error {
	log.Println("Running database migrations...")

	ctx := context.Background()

	migrations := []string{
		migrationCreateExtensions,
		migrationCreateIncomes,
		migrationCreateTransactions,
		migrationCreateTransactionTags,
		migrationCreateIndexes,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("Migrations completed successfully")
	return nil
}

const migrationCreateExtensions = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";
`

const migrationCreateIncomes = `
CREATE TABLE IF NOT EXISTS incomes (
    month CHAR(7) PRIMARY KEY,
    amount NUMERIC(20, 2) NOT NULL DEFAULT 0,
    source TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateTransactions = `
CREATE TABLE IF NOT EXISTS transactions (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    amount NUMERIC(20, 2) NOT NULL DEFAULT 0,
    category VARCHAR(100) NOT NULL DEFAULT 'Other',
    payment_mode VARCHAR(100) NOT NULL DEFAULT 'Cash',
    remarks TEXT NOT NULL DEFAULT '',
    type VARCHAR(20) NOT NULL DEFAULT 'expense',
    date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const migrationCreateTransactionTags = `
CREATE TABLE IF NOT EXISTS transaction_tags (
    transaction_id UUID NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
    tag VARCHAR(100) NOT NULL,
    PRIMARY KEY (transaction_id, tag)
);
`

const migrationCreateIndexes = `
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type);
CREATE INDEX IF NOT EXISTS idx_transaction_tags_transaction_id ON transaction_tags(transaction_id);
`
