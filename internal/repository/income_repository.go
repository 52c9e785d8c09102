package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alligatorO15/expense-manager/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IncomeRepository interface {
	Upsert(ctx context.Context, income *models.Income) error
	GetByMonth(ctx context.Context, month string) (*models.Income, error)
	GetByYear(ctx context.Context, year int) ([]models.Income, error)
}

type incomeRepository struct {
	pool *pgxpool.Pool
}

func NewIncomeRepository(pool *pgxpool.Pool) IncomeRepository {
	return &incomeRepository{pool: pool}
}

func (r *incomeRepository) db(ctx context.Context) DBTX {
	return GetTxOrPool(ctx, r.pool)
}

// Upsert атомарный insert-or-update по ключу месяца,
// поэтому на месяц всегда не больше одной записи
func (r *incomeRepository) Upsert(ctx context.Context, income *models.Income) error {
	query := `
		INSERT INTO incomes (month, amount, source, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (month) DO UPDATE
		SET amount = EXCLUDED.amount, source = EXCLUDED.source, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db(ctx).Exec(ctx, query, income.Month, income.Amount, income.Source, income.UpdatedAt)
	return err
}

// GetByMonth возвращает (nil, nil) если записи за месяц нет
func (r *incomeRepository) GetByMonth(ctx context.Context, month string) (*models.Income, error) {
	query := `SELECT month, amount, source, updated_at FROM incomes WHERE month = $1`

	var income models.Income
	err := r.db(ctx).QueryRow(ctx, query, month).Scan(
		&income.Month, &income.Amount, &income.Source, &income.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &income, nil
}

// GetByYear все записи, чей месяц начинается с префикса года
func (r *incomeRepository) GetByYear(ctx context.Context, year int) ([]models.Income, error) {
	query := `SELECT month, amount, source, updated_at FROM incomes WHERE month LIKE $1 ORDER BY month`

	rows, err := r.db(ctx).Query(ctx, query, fmt.Sprintf("%04d-%%", year))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		var income models.Income
		if err := rows.Scan(&income.Month, &income.Amount, &income.Source, &income.UpdatedAt); err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, rows.Err()
}
