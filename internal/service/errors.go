package service

import (
	"errors"
	"fmt"
)

// Kind classifies a failed Service operation.
type Kind int

const (
	KindStoreFailure Kind = iota + 1
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindStoreFailure:
		return "store failure"
	default:
		return "unknown"
	}
}

var (
	ErrNotFound     = errors.New("quote not found")
	ErrStoreFailure = errors.New("quote store failure")
)

// Error is returned by every Service operation that does not succeed.
// errors.Is matches it against ErrNotFound or ErrStoreFailure by Kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrStoreFailure:
		return e.Kind == KindStoreFailure
	default:
		return false
	}
}

func notFound(op string) error {
	return &Error{Kind: KindNotFound, Op: op}
}

func storeFailure(op string, err error) error {
	return &Error{Kind: KindStoreFailure, Op: op, Err: err}
}
