package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// New creates an error annotated with the caller's location.
func New(msg string) error {
	return fmt.Errorf("%s: %s", msg, filePath())
}

// Wrap annotates err with a message and the caller's location.
func Wrap(err error, msg string) error {
	return fmt.Errorf("%s %s \ncaused by: %w", msg, filePath(), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func filePath() string {
	pc, f, l, ok := runtime.Caller(2)
	fn := `unknown`
	if ok {
		fn = runtime.FuncForPC(pc).Name()
	}
	return fmt.Sprintf("at %s\n\t%s:%d", fn, f, l)
}
