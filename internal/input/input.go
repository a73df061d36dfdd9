// Package input reads the allocation parameters as whitespace separated
// tokens, optionally writing a prompt before each group.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"odds-allocator/internal/mathutil"
	"odds-allocator/internal/odds"
)

// Bounds for the number of odds entries.
const (
	MinBets = 1
	MaxBets = 99
)

var (
	ErrInvalidNumber   = errors.New("invalid numeric input")
	ErrCountOutOfRange = fmt.Errorf("number of odds must be between %d and %d", MinBets, MaxBets)
)

// FieldError reports which field failed to parse.
type FieldError struct {
	Field string // "budget", "count", "odds #3"
	Value string // Raw token, empty on EOF
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v (no value)", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v (%q)", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Prompts are written before each group of values is read.
type Prompts struct {
	Budget string
	Count  string
	Odds   string
}

// DefaultPrompts matches the interactive front end.
var DefaultPrompts = Prompts{
	Budget: "enter your budget (e.g. 10000): ",
	Count:  fmt.Sprintf("enter how many odds to split the budget across, %d-%d (e.g. 5): ", MinBets, MaxBets),
	Odds:   "enter each odds value (for 2.5x, 3.0x and 4.9x: 2.5 3.0 4.9): ",
}

// Request is a fully parsed allocation request.
type Request struct {
	Budget float64
	Odds   []float64 // Decimal odds, input order
}

// Reader pulls tokens from an underlying stream.
type Reader struct {
	sc      *bufio.Scanner
	prompt  io.Writer // nil disables prompts
	prompts Prompts
	format  odds.Format
}

// NewReader wraps in. Prompts go to prompt when it is non-nil.
func NewReader(in io.Reader, prompt io.Writer, format odds.Format) *Reader {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	if format == "" {
		format = odds.FormatDecimal
	}
	return &Reader{sc: sc, prompt: prompt, prompts: DefaultPrompts, format: format}
}

func (r *Reader) ask(text string) {
	if r.prompt != nil && text != "" {
		fmt.Fprint(r.prompt, text)
	}
}

// next returns the next token, or "" with ok=false on EOF.
func (r *Reader) next() (string, bool, error) {
	if r.sc.Scan() {
		return r.sc.Text(), true, nil
	}
	if err := r.sc.Err(); err != nil {
		return "", false, fmt.Errorf("reading input: %w", err)
	}
	return "", false, nil
}

// ReadBudget reads the total budget. Sign is not checked here.
func (r *Reader) ReadBudget() (float64, error) {
	r.ask(r.prompts.Budget)
	tok, ok, err := r.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &FieldError{Field: "budget", Err: ErrInvalidNumber}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || !mathutil.IsFinite(v) {
		return 0, &FieldError{Field: "budget", Value: tok, Err: ErrInvalidNumber}
	}
	return v, nil
}

// ReadCount reads the number of odds entries and checks it against
// [MinBets, MaxBets].
func (r *Reader) ReadCount() (int, error) {
	r.ask(r.prompts.Count)
	tok, ok, err := r.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &FieldError{Field: "count", Err: ErrInvalidNumber}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &FieldError{Field: "count", Value: tok, Err: ErrInvalidNumber}
	}
	if n < MinBets || n > MaxBets {
		return 0, &FieldError{Field: "count", Value: tok, Err: ErrCountOutOfRange}
	}
	return n, nil
}

// ReadOdds reads n odds tokens in the reader's format and returns them as
// decimal odds.
func (r *Reader) ReadOdds(n int) ([]float64, error) {
	r.ask(r.prompts.Odds)
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		field := fmt.Sprintf("odds #%d", i+1)
		tok, ok, err := r.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &FieldError{Field: field, Err: ErrInvalidNumber}
		}
		d, err := odds.ToDecimal(tok, r.format)
		if err != nil {
			return nil, &FieldError{Field: field, Value: tok, Err: ErrInvalidNumber}
		}
		out = append(out, d)
	}
	return out, nil
}

// ReadRequest reads budget, count and odds in order. The first failure
// aborts the read; no partial request is returned.
func (r *Reader) ReadRequest() (Request, error) {
	budget, err := r.ReadBudget()
	if err != nil {
		return Request{}, err
	}
	n, err := r.ReadCount()
	if err != nil {
		return Request{}, err
	}
	list, err := r.ReadOdds(n)
	if err != nil {
		return Request{}, err
	}
	return Request{Budget: budget, Odds: list}, nil
}
