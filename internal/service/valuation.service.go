package service

import (
	"context"

	"portfoliochart/internal/domain"
)

// ValuationService accumulates owned-symbol quotes into a date-indexed
// value table and projects the table into chart-ready series. The symbol
// set is frozen from the portfolio at construction, so every row carries
// the same columns no matter when it was created.
type ValuationService interface {
	Ingest(ctx context.Context, quote domain.StockQuote) error
	Table() domain.ValuationTable
	Project(ctx context.Context) *domain.ProjectedSeries
	Counts() IngestCounts
}

type IngestCounts struct {
	Applied int
	Ignored int
}

func NewValuationService(portfolio *domain.Portfolio) ValuationService {
	symbols := portfolio.HeldSymbols()
	owned := map[string]bool{}
	for _, symbol := range symbols {
		owned[symbol] = true
	}

	return &valuationServiceHandler{
		portfolio: portfolio,
		symbols:   symbols,
		owned:     owned,
		table:     domain.ValuationTable{},
	}
}

type valuationServiceHandler struct {
	portfolio *domain.Portfolio
	symbols   []string
	owned     map[string]bool
	table     domain.ValuationTable
	counts    IngestCounts
}

// Ingest applies one quote to the table. Quotes for symbols outside the
// portfolio are expected and ignored. Dates may arrive in any order, and
// a repeated (symbol, date) pair overwrites - last write wins.
func (h *valuationServiceHandler) Ingest(ctx context.Context, quote domain.StockQuote) error {
	if !h.owned[quote.Symbol] {
		h.counts.Ignored++
		return nil
	}

	value, err := h.portfolio.ValueOf(quote.Symbol, quote.Close)
	if err != nil {
		return err
	}

	if _, ok := h.table[quote.Date]; !ok {
		h.table[quote.Date] = domain.NewValueRow(h.symbols)
	}
	h.table[quote.Date][quote.Symbol] = &value
	h.counts.Applied++

	return nil
}

// Table returns a deep-copied snapshot, so callers can hold it while
// ingestion continues.
func (h *valuationServiceHandler) Table() domain.ValuationTable {
	return h.table.DeepCopy()
}

func (h *valuationServiceHandler) Project(ctx context.Context) *domain.ProjectedSeries {
	return ProjectTable(h.table, h.symbols)
}

func (h *valuationServiceHandler) Counts() IngestCounts {
	return h.counts
}
