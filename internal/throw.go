package internal

import "github.com/pkg/errors"

// Threading errors up and down all the stages of partitioning and
// triangulation would add a ton of complexity to the code. Instead, we use
// panics, and every exported stage recovers to convert to an error.

var (
	// Fewer than three boundary points, an island with fewer than three points,
	// or coordinates that are not finite.
	ErrInvalidInput = errors.New("invalid input")
	// Self-intersecting, duplicated or mis-nested loops, detected while
	// sweeping.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// The monotone triangulation could not proceed. This implies an upstream
	// degeneracy slipped through partitioning.
	ErrTriangulationFailure = errors.New("triangulation failure")
)

// TriangulateError is the only panic value the engine raises on purpose. It
// wraps one of the sentinel kinds above, so errors.Is works on the recovered
// error.
type TriangulateError struct {
	err error
}

func (e *TriangulateError) Error() string {
	return e.err.Error()
}

func (e *TriangulateError) Unwrap() error {
	return e.err
}

// Panic with a TriangulateError of the given kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(&TriangulateError{errors.Wrapf(kind, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(*TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
