package service

import "errors"

// Common service errors
var (
	ErrInvalidPage     = errors.New("page must be a positive integer")
	ErrPageNotFound    = errors.New("page is out of range")
	ErrEmptySearch     = errors.New("search term is required")
	ErrInvalidQuestion = errors.New("invalid question")
	ErrQuizExhausted   = errors.New("no unused questions left")
)
