package renderer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"portfoliochart/internal/domain"
	"portfoliochart/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_Render(t *testing.T) {
	ctx := context.Background()
	renderer := NewChartRenderer("Portfolio Value Over Time", 12, 6)

	t.Run("writes a chart with gaps for absent values", func(t *testing.T) {
		series := &domain.ProjectedSeries{
			Dates:   []time.Time{util.NewDate(2021, 6, 4), util.NewDate(2021, 6, 7)},
			Symbols: []string{"AAPL", "MSFT"},
			Series: map[string][]*decimal.Decimal{
				"AAPL": {
					util.DecimalPointer(decimal.NewFromInt(1000)),
					util.DecimalPointer(decimal.NewFromInt(1100)),
				},
				"MSFT": {
					util.DecimalPointer(decimal.NewFromInt(1000)),
					nil,
				},
			},
		}

		path := filepath.Join(t.TempDir(), "chart.png")
		require.NoError(t, renderer.Render(ctx, series, path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	})

	t.Run("empty projection still renders", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.png")
		require.NoError(t, renderer.Render(ctx, domain.NewEmptyProjectedSeries([]string{"AAPL"}), path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	})

	t.Run("unknown extension fails", func(t *testing.T) {
		err := renderer.Render(ctx, domain.NewEmptyProjectedSeries(nil), filepath.Join(t.TempDir(), "chart.bmp"))
		require.ErrorContains(t, err, "failed to save chart")
	})
}
