package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"portfoliochart/internal/domain"

	"github.com/shopspring/decimal"
)

// QuoteDateLayout is the feed's day-month-year date format, e.g. "04-Jun-21".
const QuoteDateLayout = "02-Jan-06"

// RawNumber keeps a feed number exactly as delivered, whether the feed
// quoted it or not.
type RawNumber string

func (n *RawNumber) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			return err
		}
		*n = RawNumber(unquoted)
		return nil
	}

	*n = RawNumber(b)
	return nil
}

func (n RawNumber) String() string {
	return string(n)
}

// RawQuoteRecord is one entry of the quote feed with every field kept
// as delivered. Only Symbol, Date and Close feed the valuation; the rest
// passes through to the staging store untouched.
type RawQuoteRecord struct {
	Symbol string    `json:"Symbol"`
	Date   string    `json:"Date"`
	Open   RawNumber `json:"Open"`
	High   RawNumber `json:"High"`
	Low    RawNumber `json:"Low"`
	Close  RawNumber `json:"Close"`
	Volume RawNumber `json:"Volume"`
}

// MalformedQuoteError reports a feed record whose date or close price
// could not be parsed.
type MalformedQuoteError struct {
	Err error
}

func (e MalformedQuoteError) Error() string {
	return e.Err.Error()
}

func ReadQuotesFile(path string) ([]RawQuoteRecord, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open quote feed %s: %w", path, err)
	}

	records := []RawQuoteRecord{}
	if err := json.Unmarshal(contents, &records); err != nil {
		return nil, fmt.Errorf("failed to parse quote feed %s: %w", path, err)
	}

	return records, nil
}

// ParseQuote converts a raw feed record into the quote the aggregator
// consumes. Parse failures come back as MalformedQuoteError so callers
// can apply their policy.
func ParseQuote(raw RawQuoteRecord) (*domain.StockQuote, error) {
	date, err := time.Parse(QuoteDateLayout, raw.Date)
	if err != nil {
		return nil, MalformedQuoteError{fmt.Errorf("bad date '%s' for %s: %w", raw.Date, raw.Symbol, err)}
	}

	closePrice, err := decimal.NewFromString(raw.Close.String())
	if err != nil {
		return nil, MalformedQuoteError{fmt.Errorf("bad close price '%s' for %s on %s: %w", raw.Close, raw.Symbol, raw.Date, err)}
	}

	return &domain.StockQuote{
		Symbol: raw.Symbol,
		Date:   date,
		Close:  closePrice,
	}, nil
}
