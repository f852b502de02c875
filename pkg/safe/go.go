package safe

import "log/slog"

// Go spawns f on its own goroutine and swallows any panic, logging it
// instead of taking the process down.
func Go(f func()) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("[safe] go panic", "error", err)
			}
		}()

		f()
	}()
}
