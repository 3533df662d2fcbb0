package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_ReadHoldingsFile(t *testing.T) {
	t.Run("reads rows in file order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "portfolio.csv")
		contents := "SYMBOL,NO_SHARES\nAAPL,10\nMSFT,5.5\nTSLA,oops\n"
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

		records, err := ReadHoldingsFile(path)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff([]HoldingRecord{
			{Symbol: "AAPL", Shares: "10"},
			{Symbol: "MSFT", Shares: "5.5"},
			{Symbol: "TSLA", Shares: "oops"},
		}, records))
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := ReadHoldingsFile(filepath.Join(t.TempDir(), "nope.csv"))
		require.ErrorContains(t, err, "failed to open portfolio file")
	})
}
