package term

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Options configures a Terminal's decoding behavior.
type Options struct {
	// EscDelay bounds how long Inkey waits for a lone ESC byte to
	// possibly turn into the start of a longer escape sequence, before
	// giving up and reporting a bare KeyEscape. Defaults to 35ms.
	EscDelay time.Duration
	// TermType selects the StaticTerminfo family the sequence table is
	// built from; NewTerminal accepts no other TerminfoFunc.
	// OptionsFromEnv fills it from $TERM; an empty or unknown value
	// selects the xterm family.
	TermType string
	// SequenceOverrides adds to (or replaces entries in) the sequence
	// table built from TermType. The resolver looks sequences up in that
	// table only in the forms \x1bO<c>, \x1b[<c> and \x1b[[<c>; an entry
	// of any other form is stored but does not change decoding.
	SequenceOverrides map[string]KeyCode
	// Encoding selects how bytes outside an escape sequence are decoded
	// into runes: "utf-8" (the default, used when empty) or "latin1"
	// for legacy 8-bit terminals and pipes, where every byte is its own
	// codepoint and no continuation-byte buffering is needed.
	Encoding string
}

// isLatin1 reports whether opts requests single-byte Latin-1 decoding
// rather than the UTF-8 default.
func (o Options) isLatin1() bool {
	return strings.EqualFold(o.Encoding, "latin1") || strings.EqualFold(o.Encoding, "iso-8859-1")
}

// DefaultEscDelay is the default time Inkey waits to resolve a lone ESC
// versus the start of a longer sequence. 35ms is long enough to absorb a
// burst of sequence bytes arriving over a local pty, but short enough
// that a standalone ESC keypress does not feel laggy to an interactive
// user.
const DefaultEscDelay = 35 * time.Millisecond

// OptionsFromEnv returns Options seeded from the process environment,
// mirroring blessed.keyboard._reinit_escdelay: ESCDELAY (milliseconds)
// and TERM. Invalid or out-of-range values are ignored in favor of the
// default, exactly as the original does.
func OptionsFromEnv() Options {
	opts := Options{
		EscDelay: DefaultEscDelay,
		TermType: os.Getenv("TERM"),
	}
	if v := os.Getenv("ESCDELAY"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			opts.EscDelay = time.Duration(ms) * time.Millisecond
		}
	}
	if opts.TermType == "" {
		opts.TermType = "xterm"
	}
	return opts
}
