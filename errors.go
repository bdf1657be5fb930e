package anyvalue

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is matched by every precondition failure: a
	// non-positive length or maximum, or exclusions covering every member.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownEnumeration means a type is neither registered nor Enumerable.
	ErrUnknownEnumeration = errors.New("unknown enumeration")
)

// precondition panics with err wrapped in the formatted message unless ok.
// The panic value is an error, so a recovered value works with errors.Is.
func precondition(ok bool, err error, format string, args ...interface{}) {
	if !ok {
		panic(errors.Wrapf(err, format, args...))
	}
}
