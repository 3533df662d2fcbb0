package repository

import (
	"database/sql"
	"fmt"

	"portfoliochart/internal/db/models/sqlite/model"
	. "portfoliochart/internal/db/models/sqlite/table"

	. "github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"
)

// QuoteStagingRepository is the insert-only landing log for the quote
// feed. Every feed row is staged exactly as delivered, before any
// filtering or parsing happens.
type QuoteStagingRepository interface {
	AddBatch(tx *sql.Tx, rows []model.StockQuoteStage) error
	List() ([]model.StockQuoteStage, error)
	CountForRun(runID string) (int, error)
}

func NewQuoteStagingRepository(db *sql.DB) QuoteStagingRepository {
	return QuoteStagingRepositoryHandler{
		Db: db,
	}
}

type QuoteStagingRepositoryHandler struct {
	Db *sql.DB
}

// sqlite allows at most 32766 bind variables per statement; each staged
// row binds nine columns.
const stageInsertChunkRows = 1000

func (h QuoteStagingRepositoryHandler) AddBatch(tx *sql.Tx, rows []model.StockQuoteStage) error {
	for start := 0; start < len(rows); start += stageInsertChunkRows {
		end := start + stageInsertChunkRows
		if end > len(rows) {
			end = len(rows)
		}

		query := StockQuoteStage.
			INSERT(StockQuoteStage.AllColumns).
			MODELS(rows[start:end])

		if _, err := query.Exec(tx); err != nil {
			return fmt.Errorf("failed to stage quote rows: %w", err)
		}
	}

	return nil
}

func (h QuoteStagingRepositoryHandler) List() ([]model.StockQuoteStage, error) {
	// created_at is stamped once per batch; rowid keeps ties in
	// insertion order
	query := StockQuoteStage.
		SELECT(StockQuoteStage.AllColumns).
		ORDER_BY(StockQuoteStage.CreatedAt.ASC(), RawInt("rowid").ASC())

	out := []model.StockQuoteStage{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list staged quotes: %w", err)
	}

	return out, nil
}

func (h QuoteStagingRepositoryHandler) CountForRun(runID string) (int, error) {
	query := StockQuoteStage.
		SELECT(COUNT(StockQuoteStage.Symbol)).
		WHERE(StockQuoteStage.RunID.EQ(String(runID)))

	q, args := query.Sql()

	var count int
	if err := h.Db.QueryRow(q, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count staged quotes for run %s: %w", runID, err)
	}

	return count, nil
}

// NewStagingDb opens the staging database and creates the quote log
// table. The default dsn keeps it in memory for the lifetime of one run.
func NewStagingDb(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open staging db %s: %w", dsn, err)
	}

	// a :memory: dsn is per-connection; a single conn keeps every
	// statement on the same database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createStockQuoteStage); err != nil {
		return nil, fmt.Errorf("failed to create staging table: %w", err)
	}

	return db, nil
}

const createStockQuoteStage = `
CREATE TABLE IF NOT EXISTS stock_quote_stage (
	run_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	date TEXT NOT NULL,
	open TEXT NOT NULL,
	high TEXT NOT NULL,
	low TEXT NOT NULL,
	close TEXT NOT NULL,
	volume TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);`
