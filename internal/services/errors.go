// internal/services/errors.go
package services

import "errors"

// ErrInvalidInput marks validation failures detected before any storage
// call. Handlers check it with errors.Is to answer 400 instead of 500;
// "no results" is never represented with an error.
var ErrInvalidInput = errors.New("invalid input")
