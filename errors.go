package connectome

import (
	"errors"
	"fmt"

	"github.com/hupe1980/connectome/rangeset"
)

var (
	// ErrRankOutOfRange is returned when the own rank does not satisfy
	// 0 <= rank < process count.
	ErrRankOutOfRange = errors.New("rank out of range")

	// ErrInternalRangeSearch is returned when the range extractor's
	// contiguity search fails to settle on a border. It signals a logic
	// defect, not a data problem; the connect call aborts and must not
	// be retried.
	ErrInternalRangeSearch = errors.New("internal range-search failure")
)

// ErrUnsupportedArity indicates a generator arity outside {0, 2}.
type ErrUnsupportedArity struct {
	Arity int
}

func (e *ErrUnsupportedArity) Error() string {
	return fmt.Sprintf("unsupported generator arity: %d (must be 0 or 2)", e.Arity)
}

// ErrBadParamPositions indicates a missing or ambiguous weight/delay
// position mapping for an arity-2 generator.
type ErrBadParamPositions struct {
	Positions *ParamPositions
	Reason    string
}

func (e *ErrBadParamPositions) Error() string {
	if e.Positions == nil {
		return fmt.Sprintf("bad weight/delay parameter positions: %s", e.Reason)
	}
	return fmt.Sprintf("bad weight/delay parameter positions (weight=%d, delay=%d): %s",
		e.Positions.Weight, e.Positions.Delay, e.Reason)
}

// ErrInvalidPopulation indicates a population that violates the strict
// ascending-order contract.
type ErrInvalidPopulation struct {
	Side  string // "source" or "target"
	cause error
}

func (e *ErrInvalidPopulation) Error() string {
	return fmt.Sprintf("invalid %s population: %v", e.Side, e.cause)
}

func (e *ErrInvalidPopulation) Unwrap() error { return e.cause }

// translateError maps subpackage sentinels into the public error contract.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, rangeset.ErrBorderSearch) {
		return fmt.Errorf("%w: %v", ErrInternalRangeSearch, err)
	}
	return err
}
