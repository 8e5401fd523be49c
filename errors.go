package valgebra

import (
	"errors"
	"fmt"

	"github.com/hupe1980/valgebra/selector"
	"github.com/hupe1980/valgebra/subsel"
)

var (
	// ErrUnknownKind is returned when text does not name a value kind.
	ErrUnknownKind = errors.New("unknown value kind")

	// ErrUnknownMode is returned when text does not name a blend mode.
	ErrUnknownMode = errors.New("unknown blend mode")

	// ErrInvalidRecipe is returned for recipes that fail validation.
	ErrInvalidRecipe = errors.New("invalid recipe")

	// ErrEmptyPath is returned for blank attribute paths.
	ErrEmptyPath = selector.ErrEmptyPath

	// ErrUnknownToken is wrapped by every TokenError.
	ErrUnknownToken = subsel.ErrUnknownToken
)

// TokenError reports a sub-selection token outside the vocabulary.
type TokenError = subsel.TokenError

// JobError reports a failed recipe job.
//
// The original underlying error can be accessed via errors.Unwrap.
type JobError struct {
	Job   string
	Index int
	cause error
}

// NewJobError wraps cause as the failure of job number index.
func NewJobError(job string, index int, cause error) *JobError {
	return &JobError{Job: job, Index: index, cause: cause}
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %d (%s): %v", e.Index, e.Job, e.cause)
}

func (e *JobError) Unwrap() error { return e.cause }
