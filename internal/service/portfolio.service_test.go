package service

import (
	"context"
	"testing"

	"portfoliochart/internal/config"
	"portfoliochart/internal/loader"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_BuildPortfolio(t *testing.T) {
	ctx := context.Background()

	t.Run("skip policy drops malformed rows and keeps going", func(t *testing.T) {
		records := []loader.HoldingRecord{
			{Symbol: "AAPL", Shares: "10"},
			{Symbol: "TSLA", Shares: "oops"},
			{Symbol: "", Shares: "3"},
			{Symbol: "MSFT", Shares: "5.5"},
		}

		result, err := BuildPortfolio(ctx, records, config.ParsePolicy_Skip)
		require.NoError(t, err)

		require.Equal(t, 2, result.Skipped)
		require.Equal(t, []string{"AAPL", "MSFT"}, result.Portfolio.HeldSymbols())

		shares, ok := result.Portfolio.Shares("MSFT")
		require.True(t, ok)
		require.True(t, decimal.NewFromFloat(5.5).Equal(shares))
	})

	t.Run("abort policy fails on the first malformed row", func(t *testing.T) {
		records := []loader.HoldingRecord{
			{Symbol: "AAPL", Shares: "10"},
			{Symbol: "TSLA", Shares: "oops"},
		}

		_, err := BuildPortfolio(ctx, records, config.ParsePolicy_Abort)
		require.Error(t, err)
		require.ErrorAs(t, err, &MalformedHoldingError{})
	})

	t.Run("negative share counts are malformed", func(t *testing.T) {
		records := []loader.HoldingRecord{
			{Symbol: "AAPL", Shares: "-1"},
		}

		result, err := BuildPortfolio(ctx, records, config.ParsePolicy_Skip)
		require.NoError(t, err)
		require.Equal(t, 1, result.Skipped)
		require.Equal(t, 0, result.Portfolio.NumHoldings())
	})

	t.Run("duplicate symbol keeps its slot and takes the later count", func(t *testing.T) {
		records := []loader.HoldingRecord{
			{Symbol: "AAPL", Shares: "10"},
			{Symbol: "MSFT", Shares: "5"},
			{Symbol: "AAPL", Shares: "20"},
		}

		result, err := BuildPortfolio(ctx, records, config.ParsePolicy_Skip)
		require.NoError(t, err)

		require.Equal(t, []string{"AAPL", "MSFT"}, result.Portfolio.HeldSymbols())
		shares, ok := result.Portfolio.Shares("AAPL")
		require.True(t, ok)
		require.True(t, decimal.NewFromInt(20).Equal(shares))
	})

	t.Run("empty input yields an empty registry", func(t *testing.T) {
		result, err := BuildPortfolio(ctx, []loader.HoldingRecord{}, config.ParsePolicy_Abort)
		require.NoError(t, err)
		require.Equal(t, 0, result.Portfolio.NumHoldings())
	})
}
