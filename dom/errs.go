package dom

import (
	"errors"
	"fmt"
)

var (
	ErrNotSupported    = errors.New("not supported")
	ErrReentrantAccess = errors.New("reentrant access")
)

// ReentrantAccessError is the panic value raised when a goroutine requests a
// guard it already holds.
type ReentrantAccessError struct {
	Guard string
	Write bool
}

func (e *ReentrantAccessError) Error() string {
	mode := "read"
	if e.Write {
		mode = "write"
	}
	return fmt.Sprintf("%s: %s requested for %s already held by this goroutine", ErrReentrantAccess, mode, e.Guard)
}

func (e *ReentrantAccessError) Unwrap() error {
	return ErrReentrantAccess
}

func notSupported(t NodeType, op string) error {
	return fmt.Errorf("%w: %s on %s", ErrNotSupported, op, t)
}
