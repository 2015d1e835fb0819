package term

import (
	"os"
	"os/signal"

	"github.com/jquast/blessed/pkg/sys"
)

// WatchResize starts a goroutine that calls onResize with the current
// dimensions of f whenever the terminal's window size changes (SIGWINCH
// on Unix), and immediately once with the size at the time of the call.
// The returned func stops the watch. Grounded on
// original_source/bin/on_resize.py and resize.py, which poll
// term.on_resize the same way, and on pkg/sys's SIGWINCH/WinSize, kept
// as the platform collaborators this needs.
func WatchResize(f *os.File, onResize func(rows, cols int)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sys.SIGWINCH)

	done := make(chan struct{})
	go func() {
		rows, cols := sys.WinSize(f)
		onResize(rows, cols)
		for {
			select {
			case <-sigCh:
				rows, cols := sys.WinSize(f)
				onResize(rows, cols)
			case <-done:
				signal.Stop(sigCh)
				return
			}
		}
	}()
	return func() { close(done) }
}
