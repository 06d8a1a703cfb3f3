// Package log provides the logging abstraction used by the UDO persistence
// layer.
//
// Persistence problems are recovered silently; this package is how they
// become visible. Inject a Logger into a coordinator to see read faults,
// decode fallbacks and swallowed write faults.
//
// # Usage
//
// Use the zerolog adapter:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//
// Or the no-op logger, which is the default everywhere:
//
//	logger := log.NewNoopLogger()
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log
