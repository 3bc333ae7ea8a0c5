package errors_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/8bitgopher/coco6809/errors"
)

func TestError(t *testing.T) {
	is := is.New(t)

	e := errors.New(errors.AddressRange, 0xfeff)
	is.Equal(e.Error(), "address out of range (0xfeff)")

	// wrapping an error of the same Errno next to another of the same kind
	// collapses to a single message rather than nesting
	f := errors.New(errors.AddressRange, e)
	is.Equal(f.Error(), "address out of range (0xfeff)")
}
