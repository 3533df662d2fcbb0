package service

import (
	"testing"
	"time"

	"portfoliochart/internal/domain"
	"portfoliochart/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_SummarizeSeries(t *testing.T) {
	t.Run("computes per symbol stats over observed values", func(t *testing.T) {
		series := &domain.ProjectedSeries{
			Dates:   []time.Time{util.NewDate(2021, 6, 4), util.NewDate(2021, 6, 7), util.NewDate(2021, 6, 8)},
			Symbols: []string{"AAPL", "MSFT"},
			Series: map[string][]*decimal.Decimal{
				"AAPL": {
					util.DecimalPointer(decimal.NewFromInt(1000)),
					util.DecimalPointer(decimal.NewFromInt(1100)),
					util.DecimalPointer(decimal.NewFromInt(900)),
				},
				"MSFT": {
					util.DecimalPointer(decimal.NewFromInt(1000)),
					nil,
					nil,
				},
			},
		}

		got, err := SummarizeSeries(series)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff([]SymbolSummary{
			{
				Symbol:       "AAPL",
				Observations: 3,
				FirstValue:   1000,
				LastValue:    900,
				MinValue:     900,
				MaxValue:     1100,
				MeanValue:    1000,
				Stdev:        100,
			},
			{
				Symbol:       "MSFT",
				Observations: 1,
				FirstValue:   1000,
				LastValue:    1000,
				MinValue:     1000,
				MaxValue:     1000,
				MeanValue:    1000,
				Stdev:        0,
			},
		}, got))
	})

	t.Run("symbol with no observations gets a zeroed summary", func(t *testing.T) {
		series := &domain.ProjectedSeries{
			Dates:   []time.Time{util.NewDate(2021, 6, 4)},
			Symbols: []string{"AAPL", "MSFT"},
			Series: map[string][]*decimal.Decimal{
				"AAPL": {util.DecimalPointer(decimal.NewFromInt(1000))},
				"MSFT": {nil},
			},
		}

		got, err := SummarizeSeries(series)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, SymbolSummary{Symbol: "MSFT"}, got[1])
	})

	t.Run("nothing observed at all returns ErrEmptyInput", func(t *testing.T) {
		_, err := SummarizeSeries(domain.NewEmptyProjectedSeries([]string{"AAPL"}))
		require.ErrorIs(t, err, ErrEmptyInput)
	})
}
