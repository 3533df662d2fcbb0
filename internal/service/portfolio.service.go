package service

import (
	"context"
	"fmt"
	"strings"

	"portfoliochart/internal/config"
	"portfoliochart/internal/domain"
	"portfoliochart/internal/loader"
	"portfoliochart/internal/logger"

	"github.com/shopspring/decimal"
)

// MalformedHoldingError reports a portfolio row whose symbol is blank or
// whose share count is not a non-negative number.
type MalformedHoldingError struct {
	Err error
}

func (e MalformedHoldingError) Error() string {
	return e.Err.Error()
}

type BuildPortfolioResult struct {
	Portfolio *domain.Portfolio
	Skipped   int
}

// BuildPortfolio constructs the holdings registry from raw portfolio
// rows. Malformed rows follow the given policy: skip drops the row and
// logs it, abort fails the whole load. A symbol that appears twice keeps
// its original position and takes the later share count.
func BuildPortfolio(ctx context.Context, records []loader.HoldingRecord, policy config.ParsePolicy) (*BuildPortfolioResult, error) {
	log := logger.FromContext(ctx)

	portfolio := domain.NewPortfolio()
	skipped := 0
	for _, record := range records {
		holding, err := newHolding(record)
		if err != nil {
			if policy == config.ParsePolicy_Abort {
				return nil, fmt.Errorf("failed to load holding '%s': %w", record.Symbol, err)
			}
			log.Warnf("skipping malformed holding '%s': %s", record.Symbol, err.Error())
			skipped++
			continue
		}
		portfolio.SetHolding(*holding)
	}

	return &BuildPortfolioResult{
		Portfolio: portfolio,
		Skipped:   skipped,
	}, nil
}

func newHolding(record loader.HoldingRecord) (*domain.Holding, error) {
	symbol := strings.TrimSpace(record.Symbol)
	if symbol == "" {
		return nil, MalformedHoldingError{fmt.Errorf("blank symbol")}
	}

	shares, err := decimal.NewFromString(strings.TrimSpace(record.Shares))
	if err != nil {
		return nil, MalformedHoldingError{fmt.Errorf("bad share count '%s': %w", record.Shares, err)}
	}
	if shares.IsNegative() {
		return nil, MalformedHoldingError{fmt.Errorf("negative share count %s", shares)}
	}

	return &domain.Holding{
		Symbol: symbol,
		Shares: shares,
	}, nil
}
