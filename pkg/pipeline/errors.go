package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

var (
	ErrNameRequired  = errors.New("every pipeline must be given a name")
	ErrStepMustBeSet = errors.New("step must be set")
	ErrAnonymousStep = errors.New("option ensureName requires every step to be named, anonymous functions are not allowed")
	ErrWrapperNoFunc = errors.New("wrapper didn't return a function")
	ErrAlreadyNested = errors.New("pipeline is already nested")
	ErrSelfNesting   = errors.New("pipeline cannot be nested in itself")
)

// ExitFunc handles an unrecoverable error.
type ExitFunc func(err error)

var (
	osExit           = os.Exit
	stderr io.Writer = os.Stderr
)

// Exit prints err with its stack trace on stderr and terminates the process with status 1.
func Exit(err error) {
	fmt.Fprintf(stderr, "%+v\n", err)
	osExit(1)
}

// haltedError marks an error already reported to the exit handler.
type haltedError struct {
	err error
}

func (h *haltedError) Error() string { return h.err.Error() }

func (h *haltedError) Unwrap() error { return h.err }

func (h *haltedError) Cause() error { return h.err }

func (h *haltedError) Format(s fmt.State, verb rune) {
	if f, ok := h.err.(fmt.Formatter); ok {
		f.Format(s, verb)

		return
	}

	fmt.Fprintf(s, "%v", h.err)
}

// IsHalted reports whether err has already gone through an exit handler.
func IsHalted(err error) bool {
	var h *haltedError

	return errors.As(err, &h)
}
