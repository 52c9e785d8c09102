package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income доход за календарный месяц, не больше одной записи на месяц
type Income struct {
	Month     string          `json:"month" db:"month"` // ключ месяца в формате YYYY-MM
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Source    string          `json:"source" db:"source"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

type IncomeSet struct {
	Amount decimal.Decimal `json:"amount"`
	Source string          `json:"source"`
}
