package timecode

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidArgumentError is returned when a value cannot be built from its
// input. It is the only error kind produced by the timeline types.
type InvalidArgumentError string

func (e InvalidArgumentError) Error() string {
	return string(e)
}

// Invalid formats an InvalidArgumentError.
func Invalid(format string, a ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, a...))
}

// IsInvalidArgument reports whether err, or any error it wraps, is an
// InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var e InvalidArgumentError
	return errors.As(err, &e)
}
