package advanced

import "github.com/pkg/errors"

// Threading errors through every geometry helper would add a lot of noise for
// conditions that only arise from malformed input. Instead, internal invariant
// failures panic with a *BorderError, and the public API recovers to convert
// them to an error. Runtime errors are not BorderErrors and keep panicking.

type BorderError struct {
	err error
}

func (e *BorderError) Error() string { return e.err.Error() }
func (e *BorderError) Unwrap() error { return e.err }

// Panic with a BorderError.
func fatalf(format string, args ...interface{}) {
	panic(&BorderError{errors.Errorf(format, args...)})
}

// Panic with a BorderError wrapping err.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(&BorderError{errors.Wrapf(err, format, args...)})
}

func HandleBorderPanicRecover(r interface{}) error {
	if r != nil {
		if borderError, ok := r.(*BorderError); ok {
			return borderError.err
		}
		panic(r)
	}
	return nil
}
