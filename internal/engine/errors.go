// Package engine holds the error kinds shared by the interaction engines
// (lesson walker, quiz runner, match game, focus task).
//
// Every error is a local, recoverable fault. Callers either match the
// sentinel with errors.Is or unpack the typed error with errors.As.
package engine

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyDomain     = errors.New("empty domain")
)

// OutOfRangeError reports a navigation index outside [0, Total).
type OutOfRangeError struct {
	Index int
	Total int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Total)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// InvalidStateError reports a transition attempted in a state that forbids it.
type InvalidStateError struct {
	Op     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// InvalidArgumentError reports malformed configuration or input.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// EmptyDomainError reports a game started over an empty candidate set.
type EmptyDomainError struct {
	Domain string
}

func (e *EmptyDomainError) Error() string {
	if e.Domain == "" {
		return "candidate set is empty"
	}
	return fmt.Sprintf("candidate set %q is empty", e.Domain)
}

func (e *EmptyDomainError) Unwrap() error { return ErrEmptyDomain }
