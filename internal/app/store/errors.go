package store

import "errors"

var (
	ErrConfiguration     = errors.New("configuration error")
	ErrInvalidURL        = errors.New("invalid URL")
	ErrInvalidDatabase   = errors.New("invalid database")
	ErrCapacityExhausted = errors.New("shortcode capacity exhausted")
)
