package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeInvestment TransactionType = "investment"
)

type Transaction struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Category    string          `json:"category" db:"category"`
	PaymentMode string          `json:"payment_mode" db:"payment_mode"`
	Tags        []string        `json:"tags" db:"-"` //теги хранятся в отдельной таблице
	Remarks     string          `json:"remarks" db:"remarks"`
	Type        TransactionType `json:"type" db:"type"`
	Date        time.Time       `json:"date" db:"date"` //назначается при создании, дальше не меняется
}

type TransactionCreate struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	PaymentMode string          `json:"payment_mode"`
	Tags        []string        `json:"tags"`
	Remarks     string          `json:"remarks"`
	Type        TransactionType `json:"type"`
}

type TransactionFilter struct {
	DateFrom    *time.Time       //транзакции с этой даты (включительно)
	DateTo      *time.Time       //по эту дату (включительно)
	DateBefore  *time.Time       //строгая верхняя граница, для месячных выгрузок
	Type        *TransactionType //только этот тип
	ExcludeType *TransactionType //все типы кроме этого
	TaggedOnly  bool             //только транзакции хотя бы с одним тегом
	SortOrder   string           //asc|desc по дате
	Limit       int
}

// структура ответа для списка последних транзакций
type TransactionList struct {
	Items []Transaction `json:"items"`
}
