package service

import (
	"errors"
	"fmt"

	"portfoliochart/internal/domain"

	"github.com/montanaflynn/stats"
)

// ErrEmptyInput marks a summary request over a projection with no
// observed values at all. Callers treat it as a reportable condition,
// not a failure.
var ErrEmptyInput = errors.New("no observed values to summarize")

type SymbolSummary struct {
	Symbol       string  `json:"symbol"`
	Observations int     `json:"observations"`
	FirstValue   float64 `json:"firstValue"`
	LastValue    float64 `json:"lastValue"`
	MinValue     float64 `json:"minValue"`
	MaxValue     float64 `json:"maxValue"`
	MeanValue    float64 `json:"meanValue"`
	Stdev        float64 `json:"stdev"`
}

// SummarizeSeries computes per-symbol descriptive stats over the observed
// values of a projection, skipping absent entries. Symbols with no
// observations get a zeroed summary. Returns ErrEmptyInput when nothing
// at all was observed.
func SummarizeSeries(series *domain.ProjectedSeries) ([]SymbolSummary, error) {
	out := []SymbolSummary{}
	totalObservations := 0

	for _, symbol := range series.Symbols {
		values := []float64{}
		for _, value := range series.Series[symbol] {
			if value == nil {
				continue
			}
			values = append(values, value.InexactFloat64())
		}
		totalObservations += len(values)

		summary := SymbolSummary{
			Symbol:       symbol,
			Observations: len(values),
		}
		if len(values) > 0 {
			summary.FirstValue = values[0]
			summary.LastValue = values[len(values)-1]

			var err error
			if summary.MinValue, err = stats.Min(values); err != nil {
				return nil, fmt.Errorf("failed to summarize %s: %w", symbol, err)
			}
			if summary.MaxValue, err = stats.Max(values); err != nil {
				return nil, fmt.Errorf("failed to summarize %s: %w", symbol, err)
			}
			if summary.MeanValue, err = stats.Mean(values); err != nil {
				return nil, fmt.Errorf("failed to summarize %s: %w", symbol, err)
			}
		}
		if len(values) > 1 {
			var err error
			if summary.Stdev, err = stats.StandardDeviationSample(values); err != nil {
				return nil, fmt.Errorf("failed to summarize %s: %w", symbol, err)
			}
		}

		out = append(out, summary)
	}

	if totalObservations == 0 {
		return nil, ErrEmptyInput
	}

	return out, nil
}
