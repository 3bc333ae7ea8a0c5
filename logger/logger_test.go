package logger_test

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/8bitgopher/coco6809/logger"
)

func TestLogger(t *testing.T) {
	is := is.New(t)
	w := &strings.Builder{}

	logger.Write(w)
	is.Equal(w.String(), "")

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	is.Equal(w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(w)
	is.Equal(w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	is.Equal(w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	logger.Tail(w, 2)
	is.Equal(w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	is.Equal(w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	logger.Tail(w, 0)
	is.Equal(w.String(), "")

	logger.Clear()
}
