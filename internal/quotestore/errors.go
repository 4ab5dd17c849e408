package quotestore

import "errors"

var (
	ErrNotFound          = errors.New("quote not found")
	ErrUnsupportedDriver = errors.New("unsupported db driver")
)
