// Package gcserr defines the error taxonomy surfaced at the solver's
// boundary operations (registration, constraint creation, parameter
// writes). The numerical core itself never returns an error: solve
// failure is a status, not an error (see solver.Result).
package gcserr

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Kind discriminates the boundary error conditions a caller may hit.
type Kind int

const (
	// UnknownReference: a constraint or primitive referenced an entity id
	// that is not registered.
	UnknownReference Kind = iota
	// DuplicateId: an entity id was registered more than once.
	DuplicateId
	// Unimplemented: a constraint kind is declared but not backed by a
	// residual/Jacobian implementation.
	Unimplemented
	// DimensionMismatch: a primitive's parameter count disagrees with
	// what sync expects to write back.
	DimensionMismatch
	// InvalidOperation: an attempt to write a fixed parameter directly.
	InvalidOperation
)

func (k Kind) String() string {
	switch k {
	case UnknownReference:
		return "UnknownReference"
	case DuplicateId:
		return "DuplicateId"
	case Unimplemented:
		return "Unimplemented"
	case DimensionMismatch:
		return "DimensionMismatch"
	case InvalidOperation:
		return "InvalidOperation"
	}
	return "Unknown"
}

// Error is the concrete error value returned from every boundary
// operation. It carries Kind so callers can switch on failure class
// without parsing messages.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New builds an *Error the same way the teacher's chk.Err builds a
// formatted error: one call site, printf-style message.
func New(kind Kind, msg string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: chk.Err(msg, args...).Error()}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
