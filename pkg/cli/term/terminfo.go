package term

import "strings"

// staticCapabilities holds, per $TERM family prefix, the terminfo
// capability strings this package needs. It is seeded from the same
// literal xterm-family sequences blessed.keyboard.DEFAULT_SEQUENCE_MIXIN
// encodes, so that a caller with no access to the system terminfo
// database (no cgo, no vendored compiler) still gets correct decoding for
// the terminal families actually in common use.
var staticCapabilities = map[string]map[string]string{
	"xterm": {
		"kcuu1": "\x1bOA", "kcud1": "\x1bOB", "kcub1": "\x1bOD", "kcuf1": "\x1bOC",
		"khome": "\x1bOH", "kend": "\x1bOF",
		"kich1": "\x1b[2~", "kdch1": "\x1b[3~",
		"kbs": "\x7f", "kpp": "\x1b[5~", "knp": "\x1b[6~",
		"kent": "\r",
		"kf1":  "\x1bOP", "kf2": "\x1bOQ", "kf3": "\x1bOR", "kf4": "\x1bOS",
		"kf5": "\x1b[15~", "kf6": "\x1b[17~", "kf7": "\x1b[18~", "kf8": "\x1b[19~",
		"kf9": "\x1b[20~", "kf10": "\x1b[21~", "kf11": "\x1b[23~", "kf12": "\x1b[24~",
	},
	"screen": {
		"kcuu1": "\x1bOA", "kcud1": "\x1bOB", "kcub1": "\x1bOD", "kcuf1": "\x1bOC",
		"khome": "\x1b[1~", "kend": "\x1b[4~",
		"kich1": "\x1b[2~", "kdch1": "\x1b[3~",
		"kbs": "\x7f", "kpp": "\x1b[5~", "knp": "\x1b[6~",
		"kent": "\r",
		"kf1":  "\x1bOP", "kf2": "\x1bOQ", "kf3": "\x1bOR", "kf4": "\x1bOS",
	},
	"tmux": {
		"kcuu1": "\x1bOA", "kcud1": "\x1bOB", "kcub1": "\x1bOD", "kcuf1": "\x1bOC",
		"khome": "\x1b[1~", "kend": "\x1b[4~",
		"kich1": "\x1b[2~", "kdch1": "\x1b[3~",
		"kbs": "\x7f", "kpp": "\x1b[5~", "knp": "\x1b[6~",
		"kent": "\r",
	},
	"rxvt": {
		"kcuu1": "\x1b[A", "kcud1": "\x1b[B", "kcub1": "\x1b[D", "kcuf1": "\x1b[C",
		"khome": "\x1b[7~", "kend": "\x1b[8~",
		"kich1": "\x1b[2~", "kdch1": "\x1b[3~",
		"kbs": "\x7f", "kpp": "\x1b[5~", "knp": "\x1b[6~",
		"kent": "\r",
		"kf1":  "\x1b[11~", "kf2": "\x1b[12~", "kf3": "\x1b[13~", "kf4": "\x1b[14~",
	},
	"linux": {
		"kcuu1": "\x1b[A", "kcud1": "\x1b[B", "kcub1": "\x1b[D", "kcuf1": "\x1b[C",
		"khome": "\x1b[1~", "kend": "\x1b[4~",
		"kich1": "\x1b[2~", "kdch1": "\x1b[3~",
		"kbs": "\x7f", "kpp": "\x1b[5~", "knp": "\x1b[6~",
		"kent": "\r",
		"kf1":  "\x1b[[A", "kf2": "\x1b[[B", "kf3": "\x1b[[C", "kf4": "\x1b[[D",
	},
	"vt100": {
		"kcuu1": "\x1bOA", "kcud1": "\x1bOB", "kcub1": "\x1bOD", "kcuf1": "\x1bOC",
		"kbs": "\x7f", "kent": "\r",
	},
}

// StaticTerminfo returns a TerminfoFunc backed by a small built-in table
// keyed by termType's family prefix (the part of $TERM before the first
// '-', e.g. "xterm" from "xterm-256color"), requiring no cgo terminfo
// binding. Unknown term types fall back to the xterm family, since most
// terminal emulators in practice are xterm-compatible.
func StaticTerminfo(termType string) TerminfoFunc {
	family := termType
	if i := strings.IndexByte(family, '-'); i >= 0 {
		family = family[:i]
	}
	caps, ok := staticCapabilities[family]
	if !ok {
		caps = staticCapabilities["xterm"]
	}
	return func(capname string) string {
		return caps[capname]
	}
}
