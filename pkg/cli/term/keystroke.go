package term

import "strings"

// EventMode tags a Keystroke as carrying a decoded protocol event payload
// rather than (or in addition to) a plain keypress, mirroring the `mode`
// attribute on blessed.keyboard.Keystroke.
type EventMode int

const (
	ModeNone EventMode = iota
	ModeBracketedPaste
	ModeMouseSGR
	ModeMouseLegacy
	ModeFocus
	ModeSync
	ModeKitty
	ModeModifyOtherKeys
	ModeLegacyCSIModifier
	ModeCursorPosition
	ModeResize
)

// BracketedPaste is the payload of a Keystroke with Mode() ==
// ModeBracketedPaste: the literal pasted text, bracketed between
// \x1b[200~ and \x1b[201~.
type BracketedPaste struct {
	Text string
}

// MouseEvent is the payload of a Keystroke with Mode() == ModeMouseSGR or
// ModeMouseLegacy.
type MouseEvent struct {
	Row, Col int
	Button   int
	Pressed  bool
	Mods     Mod
	IsWheel  bool
}

// FocusEvent is the payload of a Keystroke with Mode() == ModeFocus.
type FocusEvent struct {
	In bool
}

// SyncEvent is the payload of a Keystroke with Mode() == ModeSync,
// reporting a synchronized-output begin/end marker (DEC private mode
// 2026).
type SyncEvent struct {
	Begin bool
}

// KittyEvent is the payload of a Keystroke with Mode() == ModeKitty,
// decoding a Kitty keyboard protocol CSI-u sequence.
type KittyEvent struct {
	Codepoint  rune
	ShiftedKey rune
	BaseLayout rune
	Mods       Mod
	EventType  int // 1=press, 2=repeat, 3=release
}

// KittyKeyboardProtocol describes the feature flags a terminal has
// enabled for the Kitty keyboard protocol, as reported in response to a
// progressive-enhancement status query. Carried over from
// blessed.keyboard.KittyKeyboardProtocol as the natural companion to
// KittyEvent.
type KittyKeyboardProtocol struct {
	Disambiguate        bool
	ReportEvents        bool
	ReportAlternateKeys bool
	ReportAllKeys       bool
	ReportText          bool
}

// ParseKittyKeyboardProtocol decodes the bitmask a terminal reports for
// CSI ? <flags> u (query response for Kitty progressive enhancement).
func ParseKittyKeyboardProtocol(flags int) KittyKeyboardProtocol {
	return KittyKeyboardProtocol{
		Disambiguate:        flags&0x1 != 0,
		ReportEvents:        flags&0x2 != 0,
		ReportAlternateKeys: flags&0x4 != 0,
		ReportAllKeys:       flags&0x8 != 0,
		ReportText:          flags&0x10 != 0,
	}
}

// CursorPositionReport is the payload of a Keystroke with Mode() ==
// ModeCursorPosition: the terminal's response to a cursor position
// query, \x1b[<row>;<col>R.
type CursorPositionReport struct {
	Row, Col int
}

// ResizeEvent is the decoded in-band report of the terminal's new size,
// \x1b[48;<rows>;<cols>;<heightPx>;<widthPx>t. resolveCSI passes its
// Rows and Cols to QueryBridge.OnResize and builds no Keystroke for it,
// so Inkey never returns a Keystroke with Mode() == ModeResize.
type ResizeEvent struct {
	Rows, Cols int
	HeightPx   int
	WidthPx    int
}

// Keystroke is a single decoded unit of terminal input: either a
// graphical or control keypress, or a protocol event (mouse, paste,
// focus, sync, Kitty key). It is the return value of Terminal.Inkey.
type Keystroke struct {
	text    string
	code    KeyCode
	name    string
	mode    EventMode
	mods    Mod
	payload any
}

// Text returns the literal text of the keystroke: a single rune for a
// graphical or control key, or "" for a named/special key or a pure
// protocol event.
func (k Keystroke) Text() string { return k.text }

// Code returns the KeyCode of a named key or protocol event and true, or
// (KeyNone, false) if the keystroke is a plain or modified
// graphical/control key, a modifyOtherKeys character, or a cursor
// position report.
func (k Keystroke) Code() (KeyCode, bool) {
	if k.code == KeyNone {
		return KeyNone, false
	}
	return k.code, true
}

// Name returns the canonical KEY_* name of the keystroke and true, or
// ("", false) if it has none (empty read, or a protocol event with no
// name of its own).
func (k Keystroke) Name() (string, bool) {
	if k.name == "" {
		return "", false
	}
	return k.name, true
}

// Mode returns the EventMode of the keystroke and true if it carries a
// decoded protocol event payload, or (ModeNone, false) for a plain
// keypress.
func (k Keystroke) Mode() (EventMode, bool) {
	if k.mode == ModeNone {
		return ModeNone, false
	}
	return k.mode, true
}

// Modifiers returns the modifier keys held down along with this
// keystroke.
func (k Keystroke) Modifiers() Mod { return k.mods }

// IsSequence reports whether the keystroke carries a KeyCode: a named
// application key, or a mouse/focus/sync/paste/Kitty event with its
// dedicated code (KeyFocusIn, KeyMouseSGR, KeyKittyKey, ...). It is
// false for a modifier-combined text key (Alt-a, Ctrl-A, a
// modifyOtherKeys character), which has a synthesized Name but no code,
// and for a cursor position report, which has a Mode but neither code
// nor name.
func (k Keystroke) IsSequence() bool {
	return k.code != KeyNone
}

// Payload returns the decoded protocol event value (one of
// BracketedPaste, MouseEvent, FocusEvent, SyncEvent, KittyEvent,
// CursorPositionReport) for a keystroke with the matching Mode(), or nil
// for a plain keypress and for the ModeModifyOtherKeys and
// ModeLegacyCSIModifier keystrokes, which carry no payload. Decoding happens
// eagerly at resolve time and is simply returned here; the field exists
// so plain keypresses never pay for payload construction.
func (k Keystroke) Payload() any { return k.payload }

// modNamePrefixes lists the modifier prefixes a synthesized Name() can
// start with. Value strips them one at a time, so combinations like
// "CTRL_ALT_" need no separate entry.
var modNamePrefixes = []string{"CTRL_", "ALT_", "SHIFT_"}

// Value returns the character a modified text keystroke represents
// (e.g. a Name of "CTRL_A" or "CTRL_ALT_A" yields "A"), the empty
// string for a named application key such as KEY_UP, or the literal
// Text for a plain keystroke with no synthesized name.
func (k Keystroke) Value() string {
	name, ok := k.Name()
	if !ok {
		return k.text
	}
	rest := strings.TrimPrefix(name, "KEY_")
	stripped := false
	for {
		matched := false
		for _, prefix := range modNamePrefixes {
			if r, found := strings.CutPrefix(rest, prefix); found {
				rest = r
				stripped = true
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	if !stripped {
		return ""
	}
	return rest
}

// Matches reports whether the keystroke matches a spec string of the
// form "CTRL_ALT_LEFT", "SHIFT_a", "ENTER", or a bare key/char name,
// comparing modifiers and base name/text. It replaces the dynamic
// is_<mods>_<key>() predicate generation
// blessed.keyboard.Keystroke.__getattr__ performs in Python, which Go has
// no equivalent mechanism for.
func (k Keystroke) Matches(spec string, ignoreCase bool) bool {
	spec = strings.TrimPrefix(spec, "KEY_")
	parts := strings.Split(spec, "_")

	var want Mod
	idx := 0
loop:
	for ; idx < len(parts); idx++ {
		switch strings.ToUpper(parts[idx]) {
		case "CTRL":
			want |= ModCtrl
		case "ALT":
			want |= ModAlt
		case "SHIFT":
			want |= ModShift
		default:
			break loop
		}
	}
	base := strings.Join(parts[idx:], "_")
	if want != k.mods {
		return false
	}

	if name, ok := k.Name(); ok {
		candidate := strings.TrimPrefix(name, "KEY_")
		// A modified text key's synthesized name already carries its
		// modifiers ("KEY_CTRL_A"); they were compared above.
		if prefix := k.mods.String(); prefix != "" {
			candidate = strings.TrimPrefix(candidate, prefix+"_")
		}
		if ignoreCase {
			return strings.EqualFold(candidate, base)
		}
		return candidate == base
	}
	if ignoreCase {
		return strings.EqualFold(k.text, base)
	}
	return k.text == base
}

// IsCtrl, IsAlt and IsShift are convenience wrappers built on Modifiers,
// covering the common single-modifier checks without requiring a caller
// to compare bitmasks directly.
func (k Keystroke) IsCtrl() bool  { return k.mods.Has(ModCtrl) }
func (k Keystroke) IsAlt() bool   { return k.mods.Has(ModAlt) }
func (k Keystroke) IsShift() bool { return k.mods.Has(ModShift) }
