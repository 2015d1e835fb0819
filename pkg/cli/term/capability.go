package term

// KeyCode identifies a non-graphical key: an arrow, a function key, a
// keypad key, or one of the small set of named editing keys. Graphical
// keys (runes) are represented directly as their rune value in a
// Keystroke's text and never need a KeyCode.
type KeyCode int

// The canonical set of key codes this package recognizes, grounded on the
// curses KEY_* constants plus a handful of extensions
// (Tab/KP_*/Menu/Exit) that terminfo alone does not name.
const (
	KeyNone KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyEnter
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPMultiply
	KeyKPAdd
	KeyKPSeparator
	KeyKPSubtract
	KeyKPDecimal
	KeyKPDivide
	KeyMenu
	KeyExit

	// Dedicated protocol-event codes: unlike the synthesized names for
	// modifier-combined text keys, every Keystroke carrying one of these
	// has both code and name set, so IsSequence and Name agree for
	// mouse/focus/sync/paste/kitty events the same way they do for a
	// named application key.
	KeyBracketedPaste
	KeyFocusIn
	KeyFocusOut
	KeyMouseSGR
	KeyMouseLegacy
	KeySyncBegin
	KeySyncEnd
	KeyKittyKey
	KeyResizeEvent
)

var codeNames = map[KeyCode]string{
	KeyUp:          "KEY_UP",
	KeyDown:        "KEY_DOWN",
	KeyLeft:        "KEY_LEFT",
	KeyRight:       "KEY_RIGHT",
	KeyHome:        "KEY_HOME",
	KeyEnd:         "KEY_END",
	KeyInsert:      "KEY_INSERT",
	KeyDelete:      "KEY_DELETE",
	KeyBackspace:   "KEY_BACKSPACE",
	KeyPageUp:      "KEY_PPAGE",
	KeyPageDown:    "KEY_NPAGE",
	KeyTab:         "KEY_TAB",
	KeyEnter:       "KEY_ENTER",
	KeyEscape:      "KEY_ESCAPE",
	KeyF1:          "KEY_F1",
	KeyF2:          "KEY_F2",
	KeyF3:          "KEY_F3",
	KeyF4:          "KEY_F4",
	KeyF5:          "KEY_F5",
	KeyF6:          "KEY_F6",
	KeyF7:          "KEY_F7",
	KeyF8:          "KEY_F8",
	KeyF9:          "KEY_F9",
	KeyF10:         "KEY_F10",
	KeyF11:         "KEY_F11",
	KeyF12:         "KEY_F12",
	KeyKP0:         "KEY_KP_0",
	KeyKP1:         "KEY_KP_1",
	KeyKP2:         "KEY_KP_2",
	KeyKP3:         "KEY_KP_3",
	KeyKP4:         "KEY_KP_4",
	KeyKP5:         "KEY_KP_5",
	KeyKP6:         "KEY_KP_6",
	KeyKP7:         "KEY_KP_7",
	KeyKP8:         "KEY_KP_8",
	KeyKP9:         "KEY_KP_9",
	KeyKPMultiply:  "KEY_KP_MULTIPLY",
	KeyKPAdd:       "KEY_KP_ADD",
	KeyKPSeparator: "KEY_KP_SEPARATOR",
	KeyKPSubtract:  "KEY_KP_SUBTRACT",
	KeyKPDecimal:   "KEY_KP_DECIMAL",
	KeyKPDivide:    "KEY_KP_DIVIDE",
	KeyMenu:        "KEY_MENU",
	KeyExit:        "KEY_EXIT",

	KeyBracketedPaste: "KEY_BRACKETED_PASTE",
	KeyFocusIn:        "KEY_FOCUS_IN",
	KeyFocusOut:       "KEY_FOCUS_OUT",
	KeyMouseSGR:       "KEY_MOUSE_SGR",
	KeyMouseLegacy:    "KEY_MOUSE_LEGACY",
	KeySyncBegin:      "KEY_SYNC_BEGIN",
	KeySyncEnd:        "KEY_SYNC_END",
	KeyKittyKey:       "KEY_KITTY_KEY",
	KeyResizeEvent:    "KEY_RESIZE_EVENT",
}

// String returns the canonical KEY_* name for code, or "" for KeyNone or
// an unrecognized value.
func (c KeyCode) String() string {
	return codeNames[c]
}

// terminfoCapnames maps a KeyCode to the terminfo capability name a
// TerminfoFunc is queried with, mirroring get_curses_keycodes's walk over
// curses.has_key._capability_names in blessed.keyboard. Keys with no
// terminfo capability (the Tab/KP_*/Menu/Exit extensions) are absent and
// are only ever reached through the literal sequence mixin.
var terminfoCapnames = map[KeyCode]string{
	KeyUp:        "kcuu1",
	KeyDown:      "kcud1",
	KeyLeft:      "kcub1",
	KeyRight:     "kcuf1",
	KeyHome:      "khome",
	KeyEnd:       "kend",
	KeyInsert:    "kich1",
	KeyDelete:    "kdch1",
	KeyBackspace: "kbs",
	KeyPageUp:    "kpp",
	KeyPageDown:  "knp",
	KeyEnter:     "kent",
	KeyF1:        "kf1",
	KeyF2:        "kf2",
	KeyF3:        "kf3",
	KeyF4:        "kf4",
	KeyF5:        "kf5",
	KeyF6:        "kf6",
	KeyF7:        "kf7",
	KeyF8:        "kf8",
	KeyF9:        "kf9",
	KeyF10:       "kf10",
	KeyF11:       "kf11",
	KeyF12:       "kf12",
}

// overrideMixin holds literal sequences that win over whatever a
// terminal's terminfo entry reports, because in practice many terminals
// ship a terminfo entry whose capability string is empty or wrong for
// this particular key even though the terminal emulator reliably sends
// the literal sequence below. Grounded on
// blessed.keyboard.CURSES_KEYCODE_OVERRIDE_MIXIN.
var overrideMixin = map[string]KeyCode{
	"\x1b[3~": KeyDelete, // kdch1 is frequently empty or "\x7f" instead
	"\x1b[H":  KeyHome,   // some terminfo entries only define \x1bOH
	"\x1b[F":  KeyEnd,
}

// defaultSequenceMixin holds the literal escape sequences blessed.keyboard
// adds on top of (or in place of) whatever terminfo reports, taken from
// DEFAULT_SEQUENCE_MIXIN. It covers the SS3-style keypad sequences xterm
// sends in application-keypad mode, which terminfo databases rarely
// describe at all.
var defaultSequenceMixin = map[string]KeyCode{
	"\x1bOp": KeyKP0,
	"\x1bOq": KeyKP1,
	"\x1bOr": KeyKP2,
	"\x1bOs": KeyKP3,
	"\x1bOt": KeyKP4,
	"\x1bOu": KeyKP5,
	"\x1bOv": KeyKP6,
	"\x1bOw": KeyKP7,
	"\x1bOx": KeyKP8,
	"\x1bOy": KeyKP9,
	"\x1bOj": KeyKPMultiply,
	"\x1bOk": KeyKPAdd,
	"\x1bOl": KeyKPSeparator,
	"\x1bOm": KeyKPSubtract,
	"\x1bOn": KeyKPDecimal,
	"\x1bOo": KeyKPDivide,
	"\x09":   KeyTab,
	"\x0d":   KeyEnter,
	"\x1b":   KeyEscape,
}
