package textstore

import (
	"errors"
	"fmt"
)

// ErrStorage is matched by every I/O failure returned from a Storage.
var ErrStorage = errors.New("textstore: storage fault")

// Storage reads and writes the full text of one persistence location.
type Storage interface {
	// Exists reports whether the location currently holds text.
	// It never fails; a check that cannot be performed reports false.
	Exists() bool

	// ReadText returns the full stored text.
	// Fails if the location is absent, unreadable, or the medium errors.
	ReadText() (string, error)

	// WriteText replaces the stored text.
	// Fails if the location cannot be created or written.
	WriteText(text string) error
}

// fault wraps an I/O error so it matches ErrStorage.
type fault struct {
	op  string
	err error
}

func (f *fault) Error() string {
	return fmt.Sprintf("textstore: %s: %v", f.op, f.err)
}

func (f *fault) Unwrap() error { return f.err }

func (f *fault) Is(target error) bool { return target == ErrStorage }

func newFault(op string, err error) error {
	return &fault{op: op, err: err}
}
