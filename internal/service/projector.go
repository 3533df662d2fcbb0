package service

import (
	"portfoliochart/internal/domain"

	"github.com/shopspring/decimal"
)

// ProjectTable flattens a valuation table into parallel chart-ready
// sequences: one ascending date axis plus one value series per symbol,
// index-aligned with the axis. Absent values stay nil so every series
// has exactly one entry per date. The input is read, never modified, and
// projecting the same table twice yields identical output.
func ProjectTable(table domain.ValuationTable, symbols []string) *domain.ProjectedSeries {
	out := domain.NewEmptyProjectedSeries(symbols)
	out.Dates = table.SortedDates()

	for _, symbol := range out.Symbols {
		series := make([]*decimal.Decimal, 0, len(out.Dates))
		for _, date := range out.Dates {
			series = append(series, table[date][symbol])
		}
		out.Series[symbol] = series
	}

	return out
}
