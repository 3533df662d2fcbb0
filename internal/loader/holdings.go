package loader

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// HoldingRecord is one row of the portfolio CSV, exactly as read. Share
// counts stay text until the registry applies its parse policy.
type HoldingRecord struct {
	Symbol string `csv:"SYMBOL"`
	Shares string `csv:"NO_SHARES"`
}

func ReadHoldingsFile(path string) ([]HoldingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open portfolio file %s: %w", path, err)
	}
	defer f.Close()

	records := []HoldingRecord{}
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio file %s: %w", path, err)
	}

	return records, nil
}
