package logger

import "log/slog"

const errKey = "err"

// Err returns a slog attribute for an error value.
func Err(err error) slog.Attr {
	return slog.Any(errKey, err)
}
