package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Holding is one owned symbol and its share count, fixed at load time.
type Holding struct {
	Symbol string
	Shares decimal.Decimal
}

// Portfolio holds the set of owned symbols and their share counts.
// Symbol order is captured on first sight so everything derived from the
// portfolio (value rows, projections, chart legends) gets a deterministic
// column order instead of map iteration order.
type Portfolio struct {
	holdings map[string]Holding
	order    []string
}

func NewPortfolio() *Portfolio {
	return &Portfolio{
		holdings: map[string]Holding{},
		order:    []string{},
	}
}

// SetHolding adds or replaces a holding. A repeated symbol keeps its
// original slot in the symbol order; only the share count is overwritten.
func (p *Portfolio) SetHolding(h Holding) {
	if _, ok := p.holdings[h.Symbol]; !ok {
		p.order = append(p.order, h.Symbol)
	}
	p.holdings[h.Symbol] = h
}

// HeldSymbols returns the owned symbols in first-seen order. The returned
// slice is a copy, so callers can keep it as a frozen snapshot.
func (p Portfolio) HeldSymbols() []string {
	symbols := make([]string, len(p.order))
	copy(symbols, p.order)
	return symbols
}

func (p Portfolio) Owns(symbol string) bool {
	_, ok := p.holdings[symbol]
	return ok
}

func (p Portfolio) Shares(symbol string) (decimal.Decimal, bool) {
	h, ok := p.holdings[symbol]
	if !ok {
		return decimal.Zero, false
	}
	return h.Shares, true
}

func (p Portfolio) NumHoldings() int {
	return len(p.holdings)
}

// ValueOf computes shares * closePrice for an owned symbol. Callers must
// pre-filter with Owns - an unknown symbol here is a programming error,
// not bad input.
func (p Portfolio) ValueOf(symbol string, closePrice decimal.Decimal) (decimal.Decimal, error) {
	h, ok := p.holdings[symbol]
	if !ok {
		return decimal.Zero, UnknownSymbolError{Symbol: symbol}
	}
	return h.Shares.Mul(closePrice), nil
}

// UnknownSymbolError reports a valuation request for a symbol the
// portfolio does not hold.
type UnknownSymbolError struct {
	Symbol string
}

func (e UnknownSymbolError) Error() string {
	return fmt.Sprintf("portfolio does not hold %s", e.Symbol)
}
