package service

import "errors"

var (
	ErrURLNotFound = errors.New("URL not found")
	ErrEmptyURL    = errors.New("URL cannot be empty")
)
