package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"portfoliochart/internal/app"
	"portfoliochart/internal/config"
	"portfoliochart/internal/renderer"
	"portfoliochart/internal/repository"
	"portfoliochart/internal/trace"
)

func CloseDependencies(handler *app.ChartPipelineHandler) {
	if err := trace.Shutdown(context.Background()); err != nil {
		log.Printf("failed to shut down tracer: %v", err)
	}

	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close staging db: %v", err)
	}
}

func InitializeDependencies(configPath string) (*app.ChartPipelineHandler, error) {
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize tracer: %v\n", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := repository.NewStagingDb(cfg.Staging.Dsn)
	if err != nil {
		return nil, err
	}

	quoteStagingRepository := repository.NewQuoteStagingRepository(db)
	chartRenderer := renderer.NewChartRenderer(cfg.Chart.Title, cfg.Chart.WidthInches, cfg.Chart.HeightInches)

	return &app.ChartPipelineHandler{
		Db:                     db,
		QuoteStagingRepository: quoteStagingRepository,
		ChartRenderer:          chartRenderer,
		Config:                 cfg,
	}, nil
}
