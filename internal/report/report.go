// Package report formats an allocation for the console.
package report

import (
	"fmt"
	"io"

	"odds-allocator/internal/allocation"
)

// Summary is everything the console report shows.
type Summary struct {
	Result  allocation.Result
	ROI     float64
	Outcome allocation.Outcome
}

// NewSummary computes ROI and its label for r.
func NewSummary(r allocation.Result, profitThreshold float64) (Summary, error) {
	roi, err := allocation.ROI(r)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Result:  r,
		ROI:     roi,
		Outcome: allocation.Classify(roi, profitThreshold),
	}, nil
}

// errWriter keeps the first write error and skips the rest.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Write renders s:
//
//	bet allocation per odds:
//	odds 2.5x: 4300 -> payout if won: 10750
//	...
//
//	actual total budget: 10100
//	total payout: 32330
//	ROI: 220.10%
//	profitable allocation
func Write(w io.Writer, s Summary) error {
	ew := &errWriter{w: w}

	ew.printf("\nbet allocation per odds:\n")
	for _, l := range s.Result.Legs() {
		ew.printf("odds %.1fx: %.0f -> payout if won: %.0f\n", l.Odds, l.Bet, l.Payout)
	}

	ew.printf("\nactual total budget: %.0f\n", s.Result.TotalBet())
	ew.printf("total payout: %.0f\n", s.Result.TotalPayout())
	ew.printf("ROI: %.2f%%\n", s.ROI)
	ew.printf("%s\n", s.Outcome)

	return ew.err
}
