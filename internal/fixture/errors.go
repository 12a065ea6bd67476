package fixture

import (
	"errors"
)

// Sentinel errors for fixture parsing.
var (
	ErrHeaderMismatch = errors.New("fixture header mismatch")
	ErrMalformedRow   = errors.New("malformed fixture row")
)
