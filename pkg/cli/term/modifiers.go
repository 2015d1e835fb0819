package term

import "strings"

// Mod is a bitmask of modifier keys held down along with a key press.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

// Has reports whether m contains every bit set in want.
func (m Mod) Has(want Mod) bool {
	return m&want == want
}

func (m Mod) String() string {
	var parts []string
	// Canonical order: CTRL, ALT, SHIFT.
	if m.Has(ModCtrl) {
		parts = append(parts, "CTRL")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "ALT")
	}
	if m.Has(ModShift) {
		parts = append(parts, "SHIFT")
	}
	return strings.Join(parts, "_")
}

// modifiedCharName builds a name for a modified graphical or control
// character, e.g. modifiedCharName('a', ModAlt) -> "KEY_ALT_a",
// modifiedCharName('A', ModCtrl|ModAlt) -> "KEY_CTRL_ALT_A", or "" if m
// is zero (a plain keypress has no synthesized name; Keystroke.Name()
// reports that case as absent). The KEY_ prefix keeps every named
// Keystroke's canonical name in the same namespace, per the
// "KEY_<MODS>_<KEY>" taxonomy; Keystroke.Value() strips it back off
// along with the modifier prefixes. Grounded on the way
// blessed.keyboard.Keystroke synthesizes names like "ALT_a" and
// "CTRL_ALT_a" for modified printable runes.
func modifiedCharName(c rune, m Mod) string {
	if m == 0 {
		return ""
	}
	return "KEY_" + m.String() + "_" + string(c)
}

// xtermModify decodes the xterm modifier parameter convention used by CSI
// and SS3 sequences: parameter values 2-16 encode modFlags = param-1 as a
// bitmask where bit0=Shift, bit1=Alt, bit2=Ctrl, bit3=Meta (folded into
// Alt here, since this package does not distinguish Meta from Alt).
func xtermModify(param int) (Mod, bool) {
	if param <= 0 || param > 16 {
		return 0, false
	}
	if param == 1 {
		return 0, true
	}
	flags := param - 1
	var m Mod
	if flags&0x1 != 0 {
		m |= ModShift
	}
	if flags&0x2 != 0 {
		m |= ModAlt
	}
	if flags&0x4 != 0 {
		m |= ModCtrl
	}
	if flags&0x8 != 0 {
		m |= ModAlt
	}
	return m, true
}

// kittyModify decodes the Kitty keyboard protocol's modifier parameter.
// It shares xtermModify's value-1 bitmask convention for bits 0-2
// (Shift/Alt/Ctrl), but bit 3 means Super in Kitty's encoding rather
// than xterm's Meta, and this package does not expose a Super modifier,
// so that bit is intentionally left unmapped rather than folded into
// ModAlt the way xtermModify folds xterm's Meta bit.
func kittyModify(param int) (Mod, bool) {
	if param <= 0 || param > 16 {
		return 0, false
	}
	if param == 1 {
		return 0, true
	}
	flags := param - 1
	var m Mod
	if flags&0x1 != 0 {
		m |= ModShift
	}
	if flags&0x2 != 0 {
		m |= ModAlt
	}
	if flags&0x4 != 0 {
		m |= ModCtrl
	}
	return m, true
}

// mouseModify decodes the modifier bits embedded in a legacy X10/SGR mouse
// button byte: bit2=Shift, bit3=Alt/Meta, bit4=Ctrl.
func mouseModify(n int) Mod {
	var m Mod
	if n&4 != 0 {
		m |= ModShift
	}
	if n&8 != 0 {
		m |= ModAlt
	}
	if n&16 != 0 {
		m |= ModCtrl
	}
	return m
}

// ctrlModify decodes a raw control byte (0x00-0x1f, 0x7f) into the base
// rune it represents when Ctrl is held, and whether Ctrl should be
// reported at all. A handful of control bytes are ambiguous -- e.g. ^I and
// Tab share a byte -- and are reported in their non-Ctrl form, since that
// is the more likely intended keypress.
func ctrlModify(r rune) (rune, Mod) {
	switch r {
	case 0x0:
		return '`', ModCtrl // ^@
	case 0x1e:
		return '6', ModCtrl // ^^
	case 0x1f:
		return '/', ModCtrl // ^_
	case '\t', '\r', '\n', 0x7f:
		return r, 0
	default:
		if 0x1 <= r && r <= 0x1d {
			return r + 0x40, ModCtrl
		}
	}
	return r, 0
}
