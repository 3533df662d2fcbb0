package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ValueRow maps each owned symbol to its value on one date. A nil entry
// means no quote was observed for that symbol on that date, which is not
// the same thing as a zero value.
type ValueRow map[string]*decimal.Decimal

// NewValueRow builds a row with every owned symbol present and marked
// absent. Rows are always constructed from the frozen symbol set, so each
// date carries the full shape of the portfolio even before any quote for
// it has been seen.
func NewValueRow(symbols []string) ValueRow {
	row := make(ValueRow, len(symbols))
	for _, symbol := range symbols {
		row[symbol] = nil
	}
	return row
}

// ValuationTable accumulates one ValueRow per observed date. Keys are
// midnight-UTC dates. The table only grows while quotes are ingested;
// a date key is never removed.
type ValuationTable map[time.Time]ValueRow

// SortedDates returns the table's date keys in ascending calendar order.
func (t ValuationTable) SortedDates() []time.Time {
	dates := make([]time.Time, 0, len(t))
	for d := range t {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

func (t ValuationTable) DeepCopy() ValuationTable {
	out := make(ValuationTable, len(t))
	for date, row := range t {
		newRow := make(ValueRow, len(row))
		for symbol, value := range row {
			if value == nil {
				newRow[symbol] = nil
				continue
			}
			v := *value
			newRow[symbol] = &v
		}
		out[date] = newRow
	}
	return out
}

// ProjectedSeries is the chart-ready projection of a ValuationTable: a
// shared date axis plus one value sequence per symbol, index-aligned with
// Dates. Absent values stay in place as nils so every series keeps the
// same length as the axis.
type ProjectedSeries struct {
	Dates   []time.Time
	Symbols []string
	Series  map[string][]*decimal.Decimal
}

// NewEmptyProjectedSeries returns the well-formed zero-record projection:
// an empty date axis and an empty sequence for every symbol.
func NewEmptyProjectedSeries(symbols []string) *ProjectedSeries {
	ordered := make([]string, len(symbols))
	copy(ordered, symbols)
	series := make(map[string][]*decimal.Decimal, len(ordered))
	for _, symbol := range ordered {
		series[symbol] = []*decimal.Decimal{}
	}
	return &ProjectedSeries{
		Dates:   []time.Time{},
		Symbols: ordered,
		Series:  series,
	}
}
