package application

import "log/slog"

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

// ResolveLogger is the worker-facing variant of resolveLogger.
func ResolveLogger(logger *slog.Logger) *slog.Logger {
	return resolveLogger(logger)
}
