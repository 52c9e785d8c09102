package models

import (
	"github.com/shopspring/decimal"
)

// Stats итоги месяца и года для дашборда
type Stats struct {
	MTDIncome      decimal.Decimal `json:"mtdIncome"`      // доход за текущий месяц
	YTDIncome      decimal.Decimal `json:"ytdIncome"`      // доход за все месяцы текущего года
	MTDExpenses    decimal.Decimal `json:"mtdExpenses"`    // расходы с начала месяца (без инвестиций)
	YTDExpenses    decimal.Decimal `json:"ytdExpenses"`    // расходы с начала года (без инвестиций)
	MTDInvestments decimal.Decimal `json:"mtdInvestments"` // инвестиции с начала месяца
	YTDInvestments decimal.Decimal `json:"ytdInvestments"` // инвестиции с начала года
}

// BreakdownItem сумма по одному значению измерения (категория, способ оплаты, тег)
// Используется для построения круговых диаграмм
type BreakdownItem struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// AnalyticsReport разбивки по всем трем измерениям за один период
type AnalyticsReport struct {
	ByCategory    []BreakdownItem `json:"byCategory"`
	ByPaymentMode []BreakdownItem `json:"byPaymentMode"`
	ByTag         []BreakdownItem `json:"byTag"`
}

// TimeSeriesPoint сумма расходов за один календарный день (UTC)
type TimeSeriesPoint struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}
