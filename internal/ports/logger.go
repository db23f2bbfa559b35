package ports

import "github.com/yousefAhmed-22/SOLID/pkg/log"

// Logger is the structured diagnostics logger. It is an alias so adapters and
// the public API share one interface.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// NoopLogger discards all log messages.
type NoopLogger = log.NoopLogger

// Field constructors re-exported for internal packages.
var (
	String = log.String
	Amount = log.Amount
)
