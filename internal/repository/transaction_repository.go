package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/alligatorO15/expense-manager/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByFilter(ctx context.Context, filter *models.TransactionFilter) ([]models.Transaction, error)
	SumByFilter(ctx context.Context, filter *models.TransactionFilter) (decimal.Decimal, error)
	SumGrouped(ctx context.Context, filter *models.TransactionFilter, groupBy string) (map[string]decimal.Decimal, error)
	SumByDay(ctx context.Context, filter *models.TransactionFilter) (map[string]decimal.Decimal, error)
}

type transactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) TransactionRepository {
	return &transactionRepository{pool: pool}
}

func (r *transactionRepository) db(ctx context.Context) DBTX {
	return GetTxOrPool(ctx, r.pool)
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, amount, category, payment_mode, remarks, type, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}

	_, err := r.db(ctx).Exec(ctx, query,
		tx.ID, tx.Amount, tx.Category, tx.PaymentMode, tx.Remarks, tx.Type, tx.Date,
	)
	if err != nil {
		return err
	}

	for _, tag := range tx.Tags {
		_, err := r.db(ctx).Exec(ctx,
			`INSERT INTO transaction_tags (transaction_id, tag) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			tx.ID, tag,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// buildWhere собирает условия фильтра в WHERE-клаузу
func buildWhere(filter *models.TransactionFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("t.date >= $%d", argIndex))
		args = append(args, *filter.DateFrom)
		argIndex++
	}

	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("t.date <= $%d", argIndex))
		args = append(args, *filter.DateTo)
		argIndex++
	}

	if filter.DateBefore != nil {
		conditions = append(conditions, fmt.Sprintf("t.date < $%d", argIndex))
		args = append(args, *filter.DateBefore)
		argIndex++
	}

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("t.type = $%d", argIndex))
		args = append(args, *filter.Type)
		argIndex++
	}

	if filter.ExcludeType != nil {
		conditions = append(conditions, fmt.Sprintf("t.type <> $%d", argIndex))
		args = append(args, *filter.ExcludeType)
		argIndex++
	}

	if filter.TaggedOnly {
		conditions = append(conditions, "EXISTS (SELECT 1 FROM transaction_tags tt WHERE tt.transaction_id = t.id)")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}
	return whereClause, args
}

func (r *transactionRepository) GetByFilter(ctx context.Context, filter *models.TransactionFilter) ([]models.Transaction, error) {
	whereClause, args := buildWhere(filter)

	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.amount, t.category, t.payment_mode, t.remarks, t.type, t.date
		FROM transactions t
		%s ORDER BY t.date %s
	`, whereClause, sortOrder)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, filter.Limit)
	}

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(&tx.ID, &tx.Amount, &tx.Category, &tx.PaymentMode, &tx.Remarks, &tx.Type, &tx.Date)
		if err != nil {
			return nil, err
		}
		tx.Tags = []string{}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadTags(ctx, transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

// loadTags подгружает теги для всех транзакций одним запросом
func (r *transactionRepository) loadTags(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(transactions))
	index := make(map[uuid.UUID]*models.Transaction, len(transactions))
	for i := range transactions {
		ids = append(ids, transactions[i].ID)
		index[transactions[i].ID] = &transactions[i]
	}

	rows, err := r.db(ctx).Query(ctx,
		`SELECT transaction_id, tag FROM transaction_tags WHERE transaction_id = ANY($1) ORDER BY tag`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return err
		}
		if tx, ok := index[id]; ok {
			tx.Tags = append(tx.Tags, tag)
		}
	}
	return rows.Err()
}

func (r *transactionRepository) SumByFilter(ctx context.Context, filter *models.TransactionFilter) (decimal.Decimal, error) {
	whereClause, args := buildWhere(filter)

	query := fmt.Sprintf(`SELECT COALESCE(SUM(t.amount), 0) FROM transactions t%s`, whereClause)

	var total decimal.Decimal
	if err := r.db(ctx).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumGrouped группирует суммы по колонке-измерению (category или payment_mode)
func (r *transactionRepository) SumGrouped(ctx context.Context, filter *models.TransactionFilter, groupBy string) (map[string]decimal.Decimal, error) {
	var column string
	switch groupBy {
	case "category":
		column = "category"
	case "payment_mode":
		column = "payment_mode"
	default:
		return nil, fmt.Errorf("unsupported group by column: %s", groupBy)
	}

	whereClause, args := buildWhere(filter)

	query := fmt.Sprintf(`
		SELECT t.%s, SUM(t.amount)
		FROM transactions t
		%s GROUP BY t.%s
	`, column, whereClause, column)

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]decimal.Decimal)
	for rows.Next() {
		var key string
		var sum decimal.Decimal
		if err := rows.Scan(&key, &sum); err != nil {
			return nil, err
		}
		result[key] = sum
	}
	return result, rows.Err()
}

// SumByDay группирует суммы по календарному дню в UTC
func (r *transactionRepository) SumByDay(ctx context.Context, filter *models.TransactionFilter) (map[string]decimal.Decimal, error) {
	whereClause, args := buildWhere(filter)

	query := fmt.Sprintf(`
		SELECT TO_CHAR(t.date AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, SUM(t.amount)
		FROM transactions t
		%s GROUP BY day
	`, whereClause)

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]decimal.Decimal)
	for rows.Next() {
		var day string
		var sum decimal.Decimal
		if err := rows.Scan(&day, &sum); err != nil {
			return nil, err
		}
		result[day] = sum
	}
	return result, rows.Err()
}
