// Package log provides the structured logging abstraction used by solid.
//
// The payment core never writes diagnostics on its own; callers hand it a
// Logger. Two implementations ship with the package: a zerolog adapter and a
// no-op logger for tests and embedding.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	co, err := checkout.New(cfg, checkout.WithLogger(logger))
//
// Wrap an already configured zerolog.Logger:
//
//	logger := log.NewZerologAdapterWithLogger(zl)
//
// # Custom Loggers
//
// Anything with Debug, Info, Warn and Error methods taking a message and
// Fields satisfies Logger.
package log
