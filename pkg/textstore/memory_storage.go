package textstore

import (
	"errors"
	"io/fs"
	"sync"
)

// ErrInjected is the cause of faults produced by MemoryStorage fault injection.
var ErrInjected = errors.New("textstore: injected fault")

// MemoryStorage is an in-memory Storage intended for tests and examples.
// Its zero value is an empty, absent location.
type MemoryStorage struct {
	mu         sync.Mutex
	text       string
	present    bool
	failReads  bool
	failWrites bool
	writes     int
}

// NewMemoryStorage returns an absent location.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// NewMemoryStorageWithText returns a location already holding text.
func NewMemoryStorageWithText(text string) *MemoryStorage {
	return &MemoryStorage{text: text, present: true}
}

// Exists reports whether text has been stored.
func (s *MemoryStorage) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.present
}

// ReadText returns the stored text, or a fault wrapping fs.ErrNotExist when
// nothing is stored.
func (s *MemoryStorage) ReadText() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failReads {
		return "", newFault("read", ErrInjected)
	}
	if !s.present {
		return "", newFault("read", fs.ErrNotExist)
	}
	return s.text, nil
}

// WriteText stores text unless write faults are enabled, in which case the
// stored text is left unchanged.
func (s *MemoryStorage) WriteText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return newFault("write", ErrInjected)
	}
	s.text = text
	s.present = true
	s.writes++
	return nil
}

// FailReads makes every subsequent ReadText fail while on is true.
func (s *MemoryStorage) FailReads(on bool) {
	s.mu.Lock()
	s.failReads = on
	s.mu.Unlock()
}

// FailWrites makes every subsequent WriteText fail while on is true.
func (s *MemoryStorage) FailWrites(on bool) {
	s.mu.Lock()
	s.failWrites = on
	s.mu.Unlock()
}

// Text returns the stored text and whether anything is stored, bypassing
// fault injection.
func (s *MemoryStorage) Text() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, s.present
}

// Writes returns the number of successful writes.
func (s *MemoryStorage) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
