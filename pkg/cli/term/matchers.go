package term

// This file holds the pure interpretation logic for CSI- and SS3-style
// protocol sequences once resolver.go has already scanned the numeric
// argument list and the terminating rune: deciding which of the
// event-pattern matchers a given (starter, nums, final) triple belongs
// to, and building the Keystroke or query-bridge callback it represents.
// The numbers in the comments below only label the matchers;
// resolveCSI in resolver.go selects them by starter rune and tries them
// in its own fixed order, which does not follow that numbering. Grounded throughout on the regexes and namedtuples in
// blessed.keyboard (DEC_EVENT_PATTERNS, KITTY_KB_PROTOCOL_PATTERN,
// MODIFY_PATTERN, LEGACY_CSI_MODIFIERS_PATTERN), translated into the
// manual byte/number scanning idiom reader_unix.go already uses for CSI
// sequences rather than regexp, since that idiom is already proven
// correct and avoids a regexp.Compile on every keystroke.

// csiSeqByLast: CSI-style key sequences identified by the terminating
// rune alone, e.g. \e[A (Up), optionally with exactly two numeric
// arguments where the first is always 1, e.g. \e[1;5A (Ctrl-Up).
var csiSeqByLast = map[rune]KeyCode{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
	'Z': KeyTab, // Shift-Tab; modifier is implied, not encoded
}

// csiSeqTilde: CSI-style key sequences ending in '~', identified by the
// first numeric argument, with an optional second argument giving the
// xterm modifier, e.g. \e[3~ (Delete), \e[3;5~ (Ctrl-Delete).
var csiSeqTilde = map[int]KeyCode{
	1: KeyHome, 4: KeyEnd,
	2: KeyInsert,
	3: KeyDelete,
	5: KeyPageUp, 6: KeyPageDown,
	7: KeyHome, 8: KeyEnd,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4,
	15: KeyF5, 17: KeyF6, 18: KeyF7, 19: KeyF8,
	20: KeyF9, 21: KeyF10, 23: KeyF11, 24: KeyF12,
}

// matchCSIByLast is matcher 1: an unmodified or xterm-modified CSI
// sequence identified by its terminating rune.
func matchCSIByLast(nums []int, final rune) (KeyCode, Mod, bool) {
	code, ok := csiSeqByLast[final]
	if !ok {
		return KeyNone, 0, false
	}
	switch len(nums) {
	case 0:
		return code, 0, true
	case 2:
		if nums[0] != 1 {
			return KeyNone, 0, false
		}
		if nums[1] == 0 {
			// An explicit 0 modifier parameter means no modifier, as 1 does.
			return code, 0, true
		}
		mod, ok := xtermModify(nums[1])
		if !ok {
			return KeyNone, 0, false
		}
		return code, mod, true
	}
	return KeyNone, 0, false
}

// matchCSITilde is matcher 2: a CSI sequence ending in '~' with one or
// two numeric arguments.
func matchCSITilde(nums []int, final rune) (KeyCode, Mod, bool) {
	if final != '~' || (len(nums) != 1 && len(nums) != 2) {
		return KeyNone, 0, false
	}
	code, ok := csiSeqTilde[nums[0]]
	if !ok {
		return KeyNone, 0, false
	}
	if len(nums) == 1 {
		return code, 0, true
	}
	mod, ok := xtermModify(nums[1])
	if !ok {
		return KeyNone, 0, false
	}
	return code, mod, true
}

// legacyCSITildeMod maps the urxvt-style alternate terminator to the
// modifier it represents, used in place of a numeric modifier argument.
var legacyCSITildeMod = map[rune]Mod{
	'$': ModShift,
	'^': ModCtrl,
	'@': ModShift | ModCtrl,
}

// matchLegacyCSIModifier is matcher 3: urxvt's alternate encoding of the
// CSI-tilde modifier, changing the terminating rune instead of adding a
// numeric argument, e.g. \e[3^ for Ctrl-Delete.
func matchLegacyCSIModifier(nums []int, final rune) (KeyCode, Mod, bool) {
	mod, ok := legacyCSITildeMod[final]
	if !ok || len(nums) != 1 {
		return KeyNone, 0, false
	}
	code, ok := csiSeqTilde[nums[0]]
	if !ok {
		return KeyNone, 0, false
	}
	return code, mod, true
}

// csiSeqTilde27 maps the key-number argument of the xterm
// modifyOtherKeys encoding (\e[27;<mod>;<key>~) to the rune it encodes.
var csiSeqTilde27 = map[int]rune{
	9: '\t', 13: '\r',
	33: '!', 35: '#', 39: '\'', 40: '(', 41: ')', 43: '+', 44: ',', 45: '-',
	46: '.',
	48: '0', 49: '1', 50: '2', 51: '3', 52: '4', 53: '5', 54: '6', 55: '7',
	56: '8', 57: '9',
	58: ':', 59: ';', 60: '<', 61: '=', 62: '>', 63: '?',
}

// matchModifyOtherKeys is matcher 4: xterm's modifyOtherKeys encoding,
// \e[27;<mod>;<key>~, used for modified punctuation and digit keys that
// have no other CSI representation.
func matchModifyOtherKeys(nums []int) (rune, Mod, bool) {
	if len(nums) != 3 || nums[0] != 27 {
		return 0, 0, false
	}
	r, ok := csiSeqTilde27[nums[2]]
	if !ok {
		return 0, 0, false
	}
	mod, ok := xtermModify(nums[1])
	if !ok {
		return 0, 0, false
	}
	return r, mod, true
}

// matchMouseSGR is matcher 5: SGR (mode 1006) mouse reporting,
// \e[<btn;col;rowM (press) or ...m (release).
func matchMouseSGR(nums []int, final rune) (MouseEvent, bool) {
	if len(nums) != 3 || (final != 'M' && final != 'm') {
		return MouseEvent{}, false
	}
	cb := nums[0]
	return MouseEvent{
		Row:     nums[2],
		Col:     nums[1],
		Button:  cb & 3,
		Pressed: final == 'M',
		Mods:    mouseModify(cb),
		IsWheel: cb == 64 || cb == 65,
	}, true
}

// matchMouseLegacy is matcher 6: X10/1000-1003 legacy mouse reporting,
// \e[M<cb><cx><cy>, with coordinates offset by 32 and capped at 223 (a
// single byte cannot encode coordinates beyond 255-32).
func matchMouseLegacy(cb, cx, cy rune) MouseEvent {
	raw := int(cb) - 32
	down := true
	button := raw & 3
	wheel := raw&0x40 != 0
	if wheel {
		button = raw - 64
	} else if button == 3 {
		down = false
		button = -1
	}
	return MouseEvent{
		Row:     int(cy) - 32,
		Col:     int(cx) - 32,
		Button:  button,
		Pressed: down,
		Mods:    mouseModify(raw),
		IsWheel: wheel,
	}
}

// matchBracketedPaste is matcher 7: the \e[200~ ... \e[201~ bracket
// markers (DEC private mode 2004). The resolver is responsible for
// accumulating the text in between; this just recognizes the markers.
func matchBracketedPaste(nums []int, final rune) (begin bool, ok bool) {
	if final != '~' || len(nums) != 1 {
		return false, false
	}
	switch nums[0] {
	case 200:
		return true, true
	case 201:
		return false, true
	}
	return false, false
}

// matchFocus is matcher 8: focus in/out events (DEC private mode 1004),
// \e[I and \e[O.
func matchFocus(final rune, hasArgs bool) (FocusEvent, bool) {
	if hasArgs {
		return FocusEvent{}, false
	}
	switch final {
	case 'I':
		return FocusEvent{In: true}, true
	case 'O':
		return FocusEvent{In: false}, true
	}
	return FocusEvent{}, false
}

// matchKitty is matcher 9: the Kitty keyboard protocol's CSI-u key
// event, \e[<code>[:<shifted>[:<base>]];<mods>[:<event>][;<text>]u or
// bare \e[<code>u. subNums holds, per semicolon-separated field in
// nums, any further colon-separated sub-values resolveCSI's scan loop
// collected for that field -- e.g. for \e[1089::99;5u, nums is
// [1089, 5] and subNums[0] is [0, 99] (shifted key omitted, base key
// 99).
func matchKitty(nums []int, subNums [][]int, final rune) (KittyEvent, bool) {
	if final != 'u' || len(nums) == 0 {
		return KittyEvent{}, false
	}
	ev := KittyEvent{Codepoint: rune(nums[0]), EventType: 1}
	if len(subNums) > 0 {
		if sub := subNums[0]; len(sub) >= 1 {
			ev.ShiftedKey = rune(sub[0])
		}
		if sub := subNums[0]; len(sub) >= 2 {
			ev.BaseLayout = rune(sub[1])
		}
	}
	if len(nums) >= 2 {
		if mod, ok := kittyModify(nums[1]); ok {
			ev.Mods = mod
		}
	}
	if len(subNums) >= 2 && len(subNums[1]) >= 1 {
		ev.EventType = subNums[1][0]
	} else if len(nums) >= 3 {
		ev.EventType = nums[2]
	}
	return ev, true
}

// kittyEventSuffix appends the Kitty keyboard protocol's event-type
// suffix to a synthesized key name, omitted for an ordinary key press
// (event type 1, the default).
func kittyEventSuffix(name string, eventType int) string {
	switch eventType {
	case 2:
		return name + "_REPEATED"
	case 3:
		return name + "_RELEASED"
	default:
		return name
	}
}

// kittyFunctionalCodepoints maps the control-character codepoints the
// Kitty protocol can report through its unicode-key-code field to this
// package's existing KeyCode taxonomy. The extended Kitty
// functional-key codepoints (the Unicode private-use range the Kitty
// protocol reserves for keys with no Unicode representation, e.g. a
// bare Shift or F13) have no equivalent KeyCode here and fall through
// to a synthesized text name instead.
var kittyFunctionalCodepoints = map[rune]KeyCode{
	9:   KeyTab,
	13:  KeyEnter,
	27:  KeyEscape,
	127: KeyBackspace,
}

// kittyKeyName builds the KeyCode and canonical name for a decoded
// KittyEvent, so a Kitty key round-trips through Keystroke.Code/Name
// the way a terminfo-sourced key does. Every Kitty keystroke is a
// protocol event, so code is always populated: with the matching
// functional KeyCode when the codepoint is one of the control
// characters Kitty also reports through the unicode-key-code field, or
// with the generic KeyKittyKey code otherwise.
func kittyKeyName(ev KittyEvent) (KeyCode, string) {
	if code, ok := kittyFunctionalCodepoints[ev.Codepoint]; ok {
		return code, kittyEventSuffix(codeNames[code], ev.EventType)
	}
	name := modifiedCharName(ev.Codepoint, ev.Mods)
	if name == "" {
		name = string(ev.Codepoint)
	}
	return KeyKittyKey, kittyEventSuffix(name, ev.EventType)
}

// matchDeviceAttributes is matcher 10: the response to a primary Device
// Attributes query, \e[?<class>;<ext1>;<ext2>...c.
func matchDeviceAttributes(nums []int, final rune) (DeviceAttributes, bool) {
	if final != 'c' || len(nums) == 0 {
		return DeviceAttributes{}, false
	}
	da := DeviceAttributes{ServiceClass: nums[0], Extensions: make(map[int]bool, len(nums)-1)}
	for _, ext := range nums[1:] {
		da.Extensions[ext] = true
	}
	return da, true
}

// matchSync recognizes the synchronized-output (DEC private mode 2026)
// set/reset sequences, \e[?2026h (begin) and \e[?2026l (end).
func matchSync(nums []int, final rune) (SyncEvent, bool) {
	if len(nums) != 1 || nums[0] != 2026 || (final != 'h' && final != 'l') {
		return SyncEvent{}, false
	}
	return SyncEvent{Begin: final == 'h'}, true
}

// matchResize recognizes the in-band window resize report xterm sends
// in response to a "report window size" query (CSI 14t/18t), or
// unsolicited when the window-size-report private mode is enabled:
// \e[48;<rows>;<cols>;<heightPx>;<widthPx>t.
func matchResize(nums []int, final rune) (ResizeEvent, bool) {
	if final != 't' || len(nums) != 5 || nums[0] != 48 {
		return ResizeEvent{}, false
	}
	return ResizeEvent{Rows: nums[1], Cols: nums[2], HeightPx: nums[3], WidthPx: nums[4]}, true
}

// matchCursorPositionReport recognizes a cursor position report, the
// response to a DSR query, \e[<row>;<col>R.
func matchCursorPositionReport(nums []int, final rune, starter rune) (CursorPositionReport, bool) {
	if final != 'R' || starter != 0 || len(nums) != 2 {
		return CursorPositionReport{}, false
	}
	return CursorPositionReport{Row: nums[0], Col: nums[1]}, true
}
