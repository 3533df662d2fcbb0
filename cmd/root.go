package cmd

import (
	"context"
	"fmt"

	"portfoliochart/internal/app"
	"portfoliochart/internal/logger"
	"portfoliochart/internal/util"

	"github.com/spf13/cobra"
)

var (
	portfolioPath string
	quotesPath    string
	outputPath    string
	configPath    string
)

var rootCmd = &cobra.Command{
	Use:   "portfoliochart",
	Short: "Chart the value of a stock portfolio over time",
	Long: `portfoliochart reads a portfolio CSV and a daily quote feed, values
every holding for each quoted day, and renders one line per symbol to an
image file.`,
	RunE:          runChart,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&portfolioPath, "portfolio", "p", "", "path to the portfolio CSV (SYMBOL,NO_SHARES)")
	rootCmd.Flags().StringVarP(&quotesPath, "quotes", "q", "", "path to the quote feed JSON")
	rootCmd.Flags().StringVarP(&outputPath, "out", "o", "portfolio.png", "path of the rendered chart (.png, .svg or .pdf)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "optional yaml config file")
	rootCmd.MarkFlagRequired("portfolio")
	rootCmd.MarkFlagRequired("quotes")
}

func Execute() error {
	return rootCmd.Execute()
}

func runChart(command *cobra.Command, args []string) error {
	handler, err := InitializeDependencies(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer CloseDependencies(handler)

	log := logger.New()
	ctx := context.WithValue(context.Background(), logger.ContextKey, log)

	result, err := handler.Run(ctx, app.RunInput{
		PortfolioPath: portfolioPath,
		QuotesPath:    quotesPath,
		OutputPath:    outputPath,
	})
	if err != nil {
		return err
	}

	util.Pprint(result)

	return nil
}
