package ewkb

import (
	"errors"
	"fmt"
)

// ErrMalformed is the sentinel every decode failure wraps; match it with
// errors.Is.
var ErrMalformed = errors.New("malformed EWKB")

// MalformedError reports why a buffer could not be decoded and the byte
// offset the decoder had reached.
type MalformedError struct {
	Reason string
	Offset int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed EWKB at byte %d: %s", e.Offset, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}
