package better_sqlite

import (
	"log/slog"
)

// SlogHook returns a VerboseHook that logs each statement at debug level.
// A nil logger uses slog.Default.
func SlogHook(logger *slog.Logger) VerboseHook {
	if logger == nil {
		logger = slog.Default()
	}
	return func(sql string) {
		logger.Debug("sqlite statement", "sql", sql)
	}
}
