// Package allocation splits a budget across mutually exclusive outcomes so
// that every outcome pays the same amount (a Dutch book), then rounds each
// stake to a fixed unit and reports the return on the rounded stakes.
package allocation

import (
	"errors"
	"fmt"

	"odds-allocator/internal/mathutil"
	"odds-allocator/internal/odds"
)

// DefaultRoundingUnit is the stake granularity in currency units.
const DefaultRoundingUnit = 100.0

var (
	ErrNoOdds               = errors.New("no odds to allocate")
	ErrNonPositiveOdds      = errors.New("odds must be positive")
	ErrNonPositiveBudget    = errors.New("budget must be positive")
	ErrZeroBudgetAllocation = errors.New("rounded bets sum to zero")
	ErrNonFiniteAllocation  = errors.New("allocation totals overflow")
)

// Leg is the stake placed on a single odds entry.
type Leg struct {
	Odds   float64 // Decimal odds
	RawBet float64 // Equal-payout share before rounding
	Bet    float64 // RawBet rounded to the allocator's unit
	Payout float64 // Odds * Bet
}

// Result is an immutable allocation. Build one with Allocator.Allocate.
type Result struct {
	budget      float64
	overround   float64
	legs        []Leg
	totalBet    float64
	totalPayout float64
}

// Legs returns a copy of the legs in input order.
func (r Result) Legs() []Leg {
	out := make([]Leg, len(r.legs))
	copy(out, r.legs)
	return out
}

// Bets returns the rounded stakes in input order.
func (r Result) Bets() []float64 {
	out := make([]float64, len(r.legs))
	for i, l := range r.legs {
		out[i] = l.Bet
	}
	return out
}

// Payouts returns the per-leg payouts in input order.
func (r Result) Payouts() []float64 {
	out := make([]float64, len(r.legs))
	for i, l := range r.legs {
		out[i] = l.Payout
	}
	return out
}

func (r Result) Len() int { return len(r.legs) }
func (r Result) Budget() float64 { return r.budget }
func (r Result) Overround() float64 { return r.overround }
func (r Result) TotalBet() float64 { return r.totalBet }
func (r Result) TotalPayout() float64 { return r.totalPayout }

// Allocator computes equal-payout allocations. The zero value rounds to
// DefaultRoundingUnit. Allocator holds no mutable state and is safe for
// concurrent use.
type Allocator struct {
	unit float64
}

// New returns an Allocator rounding stakes to unit.
// A non-positive unit selects DefaultRoundingUnit.
func New(unit float64) Allocator {
	if unit <= 0 {
		unit = DefaultRoundingUnit
	}
	return Allocator{unit: unit}
}

// Unit returns the rounding unit in effect.
func (a Allocator) Unit() float64 {
	if a.unit <= 0 {
		return DefaultRoundingUnit
	}
	return a.unit
}

// Validate checks budget and odds before allocation.
func Validate(budget float64, decimalOdds []float64) error {
	if !mathutil.IsFinite(budget) || budget <= 0 {
		return fmt.Errorf("%w, got %v", ErrNonPositiveBudget, budget)
	}
	if len(decimalOdds) == 0 {
		return ErrNoOdds
	}
	for i, o := range decimalOdds {
		if !mathutil.IsFinite(o) || o <= 0 {
			return fmt.Errorf("odds #%d: %w, got %v", i+1, ErrNonPositiveOdds, o)
		}
	}
	return nil
}

// Allocate distributes budget across decimalOdds inversely proportional to
// the odds:
//
//	rawBet[i] = (1/odds[i]) / Σ(1/odds[j]) * budget
//
// so rawBet[i]*odds[i] is the same for every i. Each raw bet is then rounded
// to the nearest multiple of the unit (ties away from zero), which perturbs
// the equal payout slightly.
func (a Allocator) Allocate(budget float64, decimalOdds []float64) (Result, error) {
	if err := Validate(budget, decimalOdds); err != nil {
		return Result{}, err
	}

	unit := a.Unit()
	shares := odds.FairProbabilities(decimalOdds)

	legs := make([]Leg, len(decimalOdds))
	for i, o := range decimalOdds {
		raw := shares[i] * budget
		bet := mathutil.RoundToUnit(raw, unit)
		legs[i] = Leg{Odds: o, RawBet: raw, Bet: bet, Payout: o * bet}
	}

	return fold(budget, odds.Overround(decimalOdds), legs), nil
}

func fold(budget, overround float64, legs []Leg) Result {
	r := Result{budget: budget, overround: overround, legs: legs}
	for _, l := range legs {
		r.totalBet += l.Bet
		r.totalPayout += l.Payout
	}
	return r
}

// ROI returns (TotalPayout - TotalBet) / TotalBet * 100.
// Every leg's payout counts toward TotalPayout.
func ROI(r Result) (float64, error) {
	if !mathutil.IsFinite(r.totalBet) || !mathutil.IsFinite(r.totalPayout) {
		return 0, fmt.Errorf("%w: total bet %v, total payout %v", ErrNonFiniteAllocation, r.totalBet, r.totalPayout)
	}
	if r.totalBet == 0 {
		return 0, ErrZeroBudgetAllocation
	}
	roi := (r.totalPayout - r.totalBet) / r.totalBet * 100
	if !mathutil.IsFinite(roi) {
		return 0, fmt.Errorf("%w: roi %v", ErrNonFiniteAllocation, roi)
	}
	return roi, nil
}
