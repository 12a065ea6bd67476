package generator

import (
	"errors"
)

// Sentinel errors returned by the generator.
var (
	ErrInvalidCount  = errors.New("team count must be at least 1")
	ErrEmptyWordList = errors.New("word lists must not be empty")
)
