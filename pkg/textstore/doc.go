// Package textstore provides whole-text storage for a single persistence
// location.
//
// A [Storage] answers three questions: does the location exist, what text
// does it hold, and replace that text. Every read and write moves the whole
// text; there are no partial updates.
//
// # Implementations
//
//   - [FileStorage]: one file on disk, written atomically (temp file, then
//     rename). The parent directory is created on first write.
//   - [MemoryStorage]: an in-memory double with fault injection, for tests.
//
// I/O failures are returned wrapped so that errors.Is(err, ErrStorage) holds
// while the underlying os error stays reachable.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package textstore
