package repository

import (
	"fmt"
	"testing"
	"time"

	"portfoliochart/internal/db/models/sqlite/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_QuoteStagingRepository(t *testing.T) {
	db, err := NewStagingDb(":memory:")
	require.NoError(t, err)
	defer db.Close()

	repo := NewQuoteStagingRepository(db)

	now := time.Date(2021, 6, 7, 12, 0, 0, 0, time.UTC)
	rows := []model.StockQuoteStage{
		{RunID: "run-1", Symbol: "AAPL", Date: "04-Jun-21", Open: "124.07", High: "126.16", Low: "123.85", Close: "125.89", Volume: "75169300", CreatedAt: now},
		{RunID: "run-1", Symbol: "GOOG", Date: "04-Jun-21", Open: "2400.2", High: "2451.65", Low: "2391.3", Close: "2451.76", Volume: "1500000", CreatedAt: now},
	}

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, repo.AddBatch(tx, rows))
	require.NoError(t, tx.Commit())

	t.Run("list returns every staged row", func(t *testing.T) {
		got, err := repo.List()
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(rows, got))
	})

	t.Run("count is scoped to the run", func(t *testing.T) {
		count, err := repo.CountForRun("run-1")
		require.NoError(t, err)
		require.Equal(t, 2, count)

		count, err = repo.CountForRun("run-2")
		require.NoError(t, err)
		require.Equal(t, 0, count)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		tx, err := db.Begin()
		require.NoError(t, err)
		require.NoError(t, repo.AddBatch(tx, nil))
		require.NoError(t, tx.Commit())

		count, err := repo.CountForRun("run-1")
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})
}

func Test_QuoteStagingRepository_LargeFeed(t *testing.T) {
	db, err := NewStagingDb(":memory:")
	require.NoError(t, err)
	defer db.Close()

	repo := NewQuoteStagingRepository(db)

	// far more rows than one statement can bind, every row staged in
	// the same instant; descending symbols catch any order that is not
	// insertion order
	const total = 4015
	now := time.Date(2021, 6, 7, 12, 0, 0, 0, time.UTC)
	rows := make([]model.StockQuoteStage, 0, total)
	for i := 0; i < total; i++ {
		rows = append(rows, model.StockQuoteStage{
			RunID:     "run-1",
			Symbol:    fmt.Sprintf("SYM%04d", total-1-i),
			Date:      "04-Jun-21",
			Open:      "1",
			High:      "2",
			Low:       "0.5",
			Close:     "1.5",
			Volume:    "100",
			CreatedAt: now,
		})
	}

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, repo.AddBatch(tx, rows))
	require.NoError(t, tx.Commit())

	count, err := repo.CountForRun("run-1")
	require.NoError(t, err)
	require.Equal(t, total, count)

	got, err := repo.List()
	require.NoError(t, err)
	require.Equal(t, "", cmp.Diff(rows, got))
}
