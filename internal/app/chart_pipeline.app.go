package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"portfoliochart/internal/config"
	"portfoliochart/internal/db/models/sqlite/model"
	"portfoliochart/internal/loader"
	"portfoliochart/internal/logger"
	"portfoliochart/internal/renderer"
	"portfoliochart/internal/repository"
	"portfoliochart/internal/service"
	"portfoliochart/internal/trace"

	"github.com/google/uuid"
)

type ChartPipelineHandler struct {
	Db                     *sql.DB
	QuoteStagingRepository repository.QuoteStagingRepository
	ChartRenderer          renderer.ChartRenderer
	Config                 *config.Config
}

type RunInput struct {
	PortfolioPath string
	QuotesPath    string
	OutputPath    string
}

type RunResult struct {
	RunID           string                  `json:"runId"`
	Holdings        int                     `json:"holdings"`
	HoldingsSkipped int                     `json:"holdingsSkipped"`
	QuotesStaged    int                     `json:"quotesStaged"`
	QuotesApplied   int                     `json:"quotesApplied"`
	QuotesIgnored   int                     `json:"quotesIgnored"`
	QuotesSkipped   int                     `json:"quotesSkipped"`
	Dates           int                     `json:"dates"`
	OutputPath      string                  `json:"outputPath"`
	Summary         []service.SymbolSummary `json:"summary"`
}

// Run executes one whole batch: load the portfolio, stage the raw quote
// feed, ingest it into the valuation table, project the table and render
// the chart. Empty inputs are not failures; they produce an empty chart
// and zeroed counters.
func (h ChartPipelineHandler) Run(ctx context.Context, in RunInput) (*RunResult, error) {
	runID := uuid.NewString()
	ctx, span := trace.StartSpan(ctx, "pipeline.Run")
	defer span.End()

	log := logger.FromContext(ctx).With("runId", runID)
	if fields := trace.LogFields(ctx); fields != nil {
		log = log.With(fields...)
	}
	ctx = context.WithValue(ctx, logger.ContextKey, log)

	holdingRecords, err := loader.ReadHoldingsFile(in.PortfolioPath)
	if err != nil {
		return nil, err
	}

	buildResult, err := service.BuildPortfolio(ctx, holdingRecords, h.Config.HoldingsParsePolicy())
	if err != nil {
		return nil, err
	}
	portfolio := buildResult.Portfolio
	if portfolio.NumHoldings() == 0 {
		log.Warnf("portfolio %s has no usable holdings, the chart will be empty", in.PortfolioPath)
	}

	rawQuotes, err := loader.ReadQuotesFile(in.QuotesPath)
	if err != nil {
		return nil, err
	}
	if len(rawQuotes) == 0 {
		log.Warnf("quote feed %s is empty, the chart will be empty", in.QuotesPath)
	}

	// every feed row lands in the staging log before any filtering or
	// parsing happens
	staged, err := h.stageQuotes(ctx, runID, rawQuotes)
	if err != nil {
		return nil, err
	}

	valuationService := service.NewValuationService(portfolio)
	quotesSkipped, err := h.ingestQuotes(ctx, valuationService, rawQuotes)
	if err != nil {
		return nil, err
	}

	series := valuationService.Project(ctx)

	summary, err := service.SummarizeSeries(series)
	if err != nil {
		if !errors.Is(err, service.ErrEmptyInput) {
			return nil, err
		}
		log.Warnf("no values were observed for any holding")
		summary = []service.SymbolSummary{}
	}

	if err := h.ChartRenderer.Render(ctx, series, in.OutputPath); err != nil {
		return nil, err
	}

	counts := valuationService.Counts()
	result := &RunResult{
		RunID:           runID,
		Holdings:        portfolio.NumHoldings(),
		HoldingsSkipped: buildResult.Skipped,
		QuotesStaged:    staged,
		QuotesApplied:   counts.Applied,
		QuotesIgnored:   counts.Ignored,
		QuotesSkipped:   quotesSkipped,
		Dates:           len(series.Dates),
		OutputPath:      in.OutputPath,
		Summary:         summary,
	}

	log.Infow("chart pipeline finished",
		"holdings", result.Holdings,
		"quotesStaged", result.QuotesStaged,
		"quotesApplied", result.QuotesApplied,
		"quotesIgnored", result.QuotesIgnored,
		"quotesSkipped", result.QuotesSkipped,
		"dates", result.Dates,
		"output", result.OutputPath,
	)

	return result, nil
}

func (h ChartPipelineHandler) stageQuotes(ctx context.Context, runID string, rawQuotes []loader.RawQuoteRecord) (int, error) {
	if len(rawQuotes) == 0 {
		return 0, nil
	}

	_, span := trace.StartSpan(ctx, "pipeline.StageQuotes")
	defer span.End()

	now := time.Now().UTC()
	rows := make([]model.StockQuoteStage, 0, len(rawQuotes))
	for _, raw := range rawQuotes {
		rows = append(rows, model.StockQuoteStage{
			RunID:     runID,
			Symbol:    raw.Symbol,
			Date:      raw.Date,
			Open:      raw.Open.String(),
			High:      raw.High.String(),
			Low:       raw.Low.String(),
			Close:     raw.Close.String(),
			Volume:    raw.Volume.String(),
			CreatedAt: now,
		})
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin staging tx: %w", err)
	}
	defer tx.Rollback()

	if err := h.QuoteStagingRepository.AddBatch(tx, rows); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit staged quotes: %w", err)
	}

	return len(rows), nil
}

func (h ChartPipelineHandler) ingestQuotes(ctx context.Context, valuationService service.ValuationService, rawQuotes []loader.RawQuoteRecord) (int, error) {
	ctx, span := trace.StartSpan(ctx, "pipeline.IngestQuotes")
	defer span.End()

	log := logger.FromContext(ctx)
	quotesSkipped := 0
	for _, raw := range rawQuotes {
		quote, err := loader.ParseQuote(raw)
		if err != nil {
			if h.Config.QuotesParsePolicy() == config.ParsePolicy_Abort {
				return 0, fmt.Errorf("failed to parse quote feed record: %w", err)
			}
			log.Warnf("skipping malformed quote record: %s", err.Error())
			quotesSkipped++
			continue
		}
		if err := valuationService.Ingest(ctx, *quote); err != nil {
			return 0, err
		}
	}

	return quotesSkipped, nil
}
