package sampler

import "errors"

var (
	// ErrSampleTooLarge is returned when more records are requested than the input holds
	ErrSampleTooLarge = errors.New("sample size exceeds number of epireads")

	// ErrNegativeSample is returned for a sample size below zero
	ErrNegativeSample = errors.New("sample size must not be negative")

	// ErrInconsistentInput is returned when the input ends before every
	// selected record was emitted, meaning it changed between passes
	ErrInconsistentInput = errors.New("input ended before all sampled epireads were emitted")

	// ErrIndicesUnsorted is returned when emission is given indices that are
	// not strictly ascending
	ErrIndicesUnsorted = errors.New("sample indices must be strictly ascending")
)

// PhaseError records the phase a run failed in
type PhaseError struct {
	Phase Phase
	Err   error
}

func (e *PhaseError) Error() string {
	return e.Phase.String() + ": " + e.Err.Error()
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
