package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockQuote is one closing price for a symbol on a calendar day.
// Date is always midnight UTC; the feed carries no time component.
type StockQuote struct {
	Symbol string
	Date   time.Time
	Close  decimal.Decimal
}
