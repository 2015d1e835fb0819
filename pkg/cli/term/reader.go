// Package term decodes terminal input -- key presses, mouse events,
// bracketed paste, focus events, and a handful of terminal query
// responses -- into Keystroke values, the way blessed.keyboard and
// blessed.terminal.Terminal.inkey do for the Python blessed library.
package term

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jquast/blessed/logutil"
)

// ErrStopped is the error a read reports when Close stops it; Inkey then
// returns a zero-value Keystroke.
var ErrStopped = errors.New("stopped")

var errTimeout = errors.New("timed out")

// seqError reports a byte sequence that looked like the start of an
// escape sequence but did not resolve to a known one. It is recoverable:
// the caller can keep reading.
type seqError struct {
	msg string
	seq string
}

func (err seqError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}

// IsReadErrorRecoverable reports whether an error met while reading and
// decoding one keystroke indicates a transient condition -- a malformed
// sequence, a timeout, a report consumed by the query bridge, or an
// explicit Stop -- as opposed to a genuine I/O failure on the underlying
// file. Inkey itself returns no error: it logs a malformed sequence and
// keeps reading, and returns a zero-value Keystroke in the other cases.
func IsReadErrorRecoverable(err error) bool {
	if _, ok := err.(seqError); ok {
		return true
	}
	return err == ErrStopped || err == errTimeout || err == errConsumed
}

// Terminal decodes a stream of bytes from a terminal file into
// Keystroke values.
type Terminal struct {
	fr     fileReader
	tbl    *SequenceTable
	bridge QueryBridge
	opts   Options
	logger *log.Logger

	ungetBuf []rune

	pasting  bool
	pasteBuf strings.Builder
}

// NewTerminal creates a Terminal reading from f, with the sequence table
// built from StaticTerminfo(opts.TermType) and overlaid with
// opts.SequenceOverrides.
func NewTerminal(f *os.File, opts Options) (*Terminal, error) {
	fr, err := newFileReader(f)
	if err != nil {
		return nil, err
	}
	if opts.EscDelay <= 0 {
		opts.EscDelay = DefaultEscDelay
	}
	tbl := BuildSequenceTable(StaticTerminfo(opts.TermType))
	for seq, code := range opts.SequenceOverrides {
		tbl.ByBytes[seq] = code
		for i := 1; i < len(seq); i++ {
			tbl.Prefixes[seq[:i]] = struct{}{}
		}
	}
	return &Terminal{fr: fr, tbl: tbl, opts: opts, logger: logutil.Discard}, nil
}

// SetLogger installs the *log.Logger Terminal uses to report recoverable
// decoding errors, defaulting to logutil.Discard.
func (t *Terminal) SetLogger(l *log.Logger) { t.logger = l }

// SetQueryBridge installs the callbacks invoked when Inkey consumes a
// Device Attributes or resize report instead of returning a Keystroke
// for it.
func (t *Terminal) SetQueryBridge(b QueryBridge) { t.bridge = b }

// Close releases resources associated with the Terminal. Any outstanding
// Inkey call is aborted and returns a zero-value Keystroke.
func (t *Terminal) Close() {
	t.fr.Stop()
	t.fr.Close()
}

// Ungetch pushes text back onto the front of the input stream, so the
// next calls to Inkey return it rune by rune before reading any further
// bytes from the underlying file. Grounded on blessed.terminal.Terminal.ungetch.
func (t *Terminal) Ungetch(text string) {
	pushed := []rune(text)
	t.ungetBuf = append(pushed, t.ungetBuf...)
}

// Flushinp discards any buffered ungetch text and any in-progress
// bracketed-paste accumulation. It does not discard bytes already
// buffered by the kernel tty driver. Grounded on
// blessed.terminal.Terminal.flushinp (so far as a userspace library can
// implement it without a termios TCFLUSH ioctl).
func (t *Terminal) Flushinp() {
	t.ungetBuf = nil
	t.pasting = false
	t.pasteBuf.Reset()
}

// Inkey reads and returns the next Keystroke. A nil timeout blocks
// indefinitely; a timeout of zero returns immediately, with a zero-value
// Keystroke if nothing is available; a positive timeout blocks for at
// most that long overall, not per internal retry: a deadline is fixed
// once at entry and every iteration of the read loop below (including
// one that merely consumed a paste marker or a query-bridge report and
// loops back for a real keystroke) waits only the time remaining until
// it, so several such events in a row cannot make the call overrun the
// caller's timeout. Within a timeout, a lone ESC byte additionally
// waits up to min(Options.EscDelay, time remaining) before resolving as
// a bare KeyEscape, giving a longer escape sequence a chance to
// complete without extending past the deadline. Grounded on
// blessed.terminal.Terminal.inkey's deadline/esc_delay loop and its
// _time_left helper.
func (t *Terminal) Inkey(timeout *time.Duration) Keystroke {
	if len(t.ungetBuf) > 0 {
		r := t.ungetBuf[0]
		t.ungetBuf = t.ungetBuf[1:]
		base, mod := ctrlModify(r)
		return plainKey(base, mod)
	}

	hasDeadline := timeout != nil
	var deadline time.Time
	if hasDeadline {
		deadline = time.Now().Add(*timeout)
	}

	for {
		readTimeout := -1 * time.Nanosecond // negative means block forever
		if hasDeadline {
			readTimeout = time.Until(deadline)
			if readTimeout <= 0 {
				return Keystroke{}
			}
		}

		k, err := resolveEvent(t.fr, t.tbl, t.bridge, readTimeout, t.opts.EscDelay, t.opts.isLatin1())
		if err != nil {
			switch {
			case err == errTimeout:
				return Keystroke{}
			case err == ErrStopped:
				return Keystroke{}
			case err == errConsumed:
				continue
			case IsReadErrorRecoverable(err):
				t.logger.Printf("decode error: %v", err)
				continue
			default:
				return Keystroke{}
			}
		}

		if mode, ok := k.Mode(); ok && mode == ModeBracketedPaste {
			if k.mods.Has(ModShift) {
				t.pasting = true
				t.pasteBuf.Reset()
				continue
			}
			t.pasting = false
			return Keystroke{mode: ModeBracketedPaste, payload: BracketedPaste{Text: t.pasteBuf.String()}, code: KeyBracketedPaste, name: codeNames[KeyBracketedPaste]}
		}
		if t.pasting {
			t.pasteBuf.WriteString(k.text)
			continue
		}

		if k.name == "" && k.code != KeyNone {
			k.name = t.tbl.NameByCode[k.code]
		}
		return k
	}
}
