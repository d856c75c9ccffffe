package solver

import "errors"

// Domain errors for solver construction and time integration.
var (
	// ErrBadConfig indicates an invalid discretization or physical parameter.
	ErrBadConfig = errors.New("solver: invalid configuration")

	// ErrUnstable indicates the integration produced NaNs or infinities.
	ErrUnstable = errors.New("solver: integration unstable (field diverged)")

	// ErrCanceled indicates the run was interrupted.
	ErrCanceled = errors.New("solver: run canceled by context")
)

// StepError wraps an error with the step at which integration stopped.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
