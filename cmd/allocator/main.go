package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"odds-allocator/internal/allocation"
	"odds-allocator/internal/config"
	"odds-allocator/internal/input"
	"odds-allocator/internal/logger"
	"odds-allocator/internal/report"
)

const serviceName = "odds-allocator"

// Exit codes. Input and output failures share a code.
const (
	exitOK      = 0
	exitInput   = 1
	exitFailure = 1
)

func main() {
	cfg := config.Load()

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(exitFailure)
	}

	log, err := logger.New(serviceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		os.Exit(exitFailure)
	}

	code := run(os.Stdin, os.Stdout, os.Stderr, cfg, log)
	_ = log.Sync()
	os.Exit(code)
}

// run reads one request from stdin, allocates, and writes the report to
// stdout. Nothing is written to stdout after a failure except prompts
// already shown.
func run(stdin io.Reader, stdout, stderr io.Writer, cfg config.Config, log *zap.Logger) int {
	var promptOut io.Writer
	if cfg.ShowPrompts {
		promptOut = stdout
	}

	reader := input.NewReader(stdin, promptOut, cfg.OddsFormat)
	req, err := reader.ReadRequest()
	if err != nil {
		log.Debug("input rejected", zap.Error(err))
		fmt.Fprintln(stderr, describe(err))
		return exitInput
	}

	log.Info("request read",
		zap.Float64("budget", req.Budget),
		zap.Int("count", len(req.Odds)),
		zap.String("format", string(cfg.OddsFormat)),
	)

	alloc := allocation.New(cfg.RoundingUnit)
	result, err := alloc.Allocate(req.Budget, req.Odds)
	if err != nil {
		log.Debug("allocation rejected", zap.Error(err))
		fmt.Fprintln(stderr, describe(err))
		return exitInput
	}

	summary, err := report.NewSummary(result, cfg.ProfitThreshold)
	if err != nil {
		log.Debug("roi undefined", zap.Error(err), zap.Float64("budget", req.Budget))
		fmt.Fprintln(stderr, describe(err))
		return exitInput
	}

	log.Info("allocation complete",
		zap.Float64("total_bet", result.TotalBet()),
		zap.Float64("total_payout", result.TotalPayout()),
		zap.Float64("overround", result.Overround()),
		zap.Float64("roi", summary.ROI),
		zap.Stringer("outcome", summary.Outcome),
		zap.String("unit", config.FormatUnit(alloc.Unit())),
	)

	if err := report.Write(stdout, summary); err != nil {
		log.Error("writing report", zap.Error(err))
		return exitFailure
	}
	return exitOK
}

// describe turns a failure into the one-line message shown on stderr.
func describe(err error) string {
	switch {
	case errors.Is(err, input.ErrCountOutOfRange),
		errors.Is(err, input.ErrInvalidNumber),
		errors.Is(err, allocation.ErrNonPositiveOdds),
		errors.Is(err, allocation.ErrNonPositiveBudget):
		return fmt.Sprintf("invalid input: %v", err)
	case errors.Is(err, allocation.ErrZeroBudgetAllocation):
		return fmt.Sprintf("budget too small to allocate in units of the rounding step: %v", err)
	case errors.Is(err, allocation.ErrNonFiniteAllocation):
		return fmt.Sprintf("budget too large to allocate: %v", err)
	}
	return fmt.Sprintf("error: %v", err)
}
