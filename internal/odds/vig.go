package odds

// ImpliedSum returns Σ 1/d over decimal odds.
// A sum below 1.0 means a guaranteed-profit (Dutch book) market.
// Returns 0 if any odds value is non-positive.
func ImpliedSum(decimalOdds []float64) float64 {
	var sum float64
	for _, d := range decimalOdds {
		if d <= 0 {
			return 0
		}
		sum += DecimalToImplied(d)
	}
	return sum
}

// Overround returns the bookmaker margin of a market: ImpliedSum - 1.
// Negative values mean the outcomes are underpriced in aggregate.
func Overround(decimalOdds []float64) float64 {
	sum := ImpliedSum(decimalOdds)
	if sum == 0 {
		return 0
	}
	return sum - 1
}

// FairProbabilities removes the vig from an N-way market
// Returns the true probabilities that sum to 1.0, in input order.
//
// Method: Multiplicative vig removal (proportional)
// trueProb[i] = implied[i] / Σ implied
//
// Staking budget*trueProb[i] on each outcome pays the same amount whichever wins.
func FairProbabilities(decimalOdds []float64) []float64 {
	total := ImpliedSum(decimalOdds)
	if total <= 0 {
		return nil
	}

	probs := make([]float64, len(decimalOdds))
	for i, d := range decimalOdds {
		probs[i] = DecimalToImplied(d) / total
	}
	return probs
}
