package term

import (
	"errors"
	"time"
	"unicode/utf8"
)

// byteReaderWithTimeout is the minimal collaborator resolveEvent needs:
// a single byte, or errTimeout if none arrives within timeout, or
// ErrStopped if the reader was stopped concurrently. Satisfied by
// fileReader (file_reader_unix.go).
type byteReaderWithTimeout interface {
	ReadByteWithTimeout(timeout time.Duration) (byte, error)
}

// runeEndOfSeq is returned by readRune's helper closures in resolveEvent
// to signal "no more bytes arrived before the deadline", distinct from a
// real rune value.
const runeEndOfSeq rune = -1

// errConsumed signals that resolveEvent scanned a full sequence but it
// was routed to QueryBridge rather than returned as a Keystroke (a
// Device Attributes or in-band resize report). It is distinct from errTimeout so Inkey's
// loop keeps waiting for a real keystroke instead of giving up early.
var errConsumed = errors.New("consumed by query bridge")

// readRune reads one rune from rd, waiting up to timeout for the first
// byte. When latin1 is set, every byte is its own codepoint (ISO-8859-1
// decodes onto the first 256 Unicode code points) and no continuation
// buffering happens; otherwise the rune is decoded as UTF-8.
// Continuation bytes of a multi-byte UTF-8 rune are read with a short,
// fixed timeout regardless of the caller's timeout, since a terminal
// sends a whole multi-byte rune as one burst and a stalled continuation
// byte indicates a genuinely malformed stream rather than something
// worth the caller's full patience.
func readRune(rd byteReaderWithTimeout, timeout time.Duration, latin1 bool) (rune, error) {
	if latin1 {
		b, err := rd.ReadByteWithTimeout(timeout)
		if err != nil {
			return runeEndOfSeq, err
		}
		return rune(b), nil
	}

	var buf [utf8.UTFMax]byte
	n := 0
	for {
		b, err := rd.ReadByteWithTimeout(timeout)
		if err != nil {
			return runeEndOfSeq, err
		}
		buf[n] = b
		n++
		if utf8.FullRune(buf[:n]) {
			r, _ := utf8.DecodeRune(buf[:n])
			return r, nil
		}
		if n == len(buf) {
			r, _ := utf8.DecodeRune(buf[:n])
			return r, nil
		}
		timeout = continuationByteTimeout
	}
}

var continuationByteTimeout = 50 * time.Millisecond

// resolveEvent reads one Keystroke from rd. firstTimeout bounds the wait
// for the very first byte (the caller's Inkey timeout); escDelay bounds
// the wait for each subsequent byte of a sequence already in progress,
// since a terminal emitting an escape sequence sends all of its bytes in
// one burst. Grounded on reader_unix.go's readEvent for the overall
// CSI/SS3 scanning control flow, and on blessed.keyboard's matcher
// functions (matchers.go) for interpreting what has been scanned.
func resolveEvent(rd byteReaderWithTimeout, tbl *SequenceTable, bridge QueryBridge, firstTimeout, escDelay time.Duration, latin1 bool) (Keystroke, error) {
	hasDeadline := firstTimeout >= 0
	var deadline time.Time
	if hasDeadline {
		deadline = time.Now().Add(firstTimeout)
	}

	r, err := readRune(rd, firstTimeout, latin1)
	if err != nil {
		return Keystroke{}, err
	}

	currentSeq := string(r)
	next := func() rune {
		wait := escDelay
		if hasDeadline {
			if remaining := time.Until(deadline); remaining < wait {
				wait = remaining
				if wait < 0 {
					wait = 0
				}
			}
		}
		rr, e := readRune(rd, wait, latin1)
		if e != nil {
			return runeEndOfSeq
		}
		currentSeq += string(rr)
		return rr
	}
	bad := func(msg string) (Keystroke, error) {
		return Keystroke{}, seqError{msg, currentSeq}
	}

	if r != 0x1b {
		base, mod := ctrlModify(r)
		return plainKey(base, mod), nil
	}

	r2 := next()
	hasTwoLeadingESC := false
	if r2 == 0x1b {
		hasTwoLeadingESC = true
		r2 = next()
	}
	if r2 == runeEndOfSeq {
		return Keystroke{code: KeyEscape, name: "KEY_ESCAPE"}, nil
	}

	switch r2 {
	case '[':
		k, err := resolveCSI(next, bad, tbl, bridge)
		if err != nil {
			return Keystroke{}, err
		}
		if hasTwoLeadingESC {
			k.mods |= ModAlt
		}
		return k, nil
	case 'O':
		r3 := next()
		if r3 == runeEndOfSeq {
			return plainKey('O', ModAlt), nil
		}
		if code, ok := tbl.ByBytes["\x1bO"+string(r3)]; ok {
			k := Keystroke{code: code, name: tbl.NameByCode[code]}
			if mod, ok := ss3Mod[r3]; ok {
				k.mods |= mod
			}
			if hasTwoLeadingESC {
				k.mods |= ModAlt
			}
			return k, nil
		}
		if code, ok := ss3Seq[r3]; ok {
			k := Keystroke{code: code, name: tbl.NameByCode[code]}
			if mod, ok := ss3Mod[r3]; ok {
				k.mods |= mod
			}
			if hasTwoLeadingESC {
				k.mods |= ModAlt
			}
			return k, nil
		}
		return bad("bad G3")
	default:
		base, mod := ctrlModify(r2)
		return plainKey(base, mod|ModAlt), nil
	}
}

// plainKey builds the Keystroke for a graphical or control-modified
// character: text is the rune itself, name is the modifier-qualified
// name (e.g. "KEY_ALT_a") when mods is non-zero, absent otherwise so a
// bare keypress's Name() reports no name.
func plainKey(r rune, mod Mod) Keystroke {
	return Keystroke{text: string(r), mods: mod, name: modifiedCharName(r, mod)}
}

// ss3Seq mirrors the g3Seq table of reader_unix.go: SS3-style sequences,
// \eO followed by exactly one rune.
var ss3Seq = map[rune]KeyCode{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd, 'M': KeyInsert,
	'a': KeyUp, 'b': KeyDown, 'c': KeyRight, 'd': KeyLeft,
	'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
}

// ss3Mod gives the implied Ctrl modifier for urxvt's lowercase SS3
// variants (\eOa is Ctrl-Up, etc).
var ss3Mod = map[rune]Mod{
	'a': ModCtrl, 'b': ModCtrl, 'c': ModCtrl, 'd': ModCtrl,
}

// resolveCSI scans a CSI sequence (everything after \e[) and dispatches
// to the matchers in matchers.go. next reads the following rune with the
// escDelay timeout; bad builds a seqError from the message and the
// sequence scanned so far.
func resolveCSI(next func() rune, bad func(string) (Keystroke, error), tbl *SequenceTable, bridge QueryBridge) (Keystroke, error) {
	r := next()
	if r == runeEndOfSeq {
		return plainKey('[', ModAlt), nil
	}

	var starter rune
	var nums []int
	var subNums [][]int

	switch r {
	case '<':
		starter = r
		r = next()
	case '?':
		starter = r
		r = next()
	case 'M':
		cb := next()
		if cb == runeEndOfSeq {
			return bad("incomplete mouse event")
		}
		cx := next()
		if cx == runeEndOfSeq {
			return bad("incomplete mouse event")
		}
		cy := next()
		if cy == runeEndOfSeq {
			return bad("incomplete mouse event")
		}
		m := matchMouseLegacy(cb, cx, cy)
		return Keystroke{mode: ModeMouseLegacy, payload: m, mods: m.Mods, code: KeyMouseLegacy, name: codeNames[KeyMouseLegacy]}, nil
	case '[':
		// The linux console's kf1-kf4 repeat the bracket, e.g. "\x1b[[A"
		// for F1, instead of using a numeric argument or SS3 like every
		// other family this package knows about. It carries no numeric
		// argument list of its own, so it's resolved by a direct table
		// lookup on the complete 4-byte sequence rather than falling into
		// the numeric scan loop below.
		final := next()
		if final == runeEndOfSeq {
			return bad("incomplete CSI-bracket sequence")
		}
		if code, ok := tbl.ByBytes["\x1b[["+string(final)]; ok {
			return Keystroke{code: code, name: tbl.NameByCode[code]}, nil
		}
		return bad("bad CSI-bracket sequence")
	}

scan:
	for {
		switch {
		case r == ';':
			nums = append(nums, 0)
			subNums = append(subNums, nil)
		case r == ':':
			if len(nums) == 0 {
				nums = append(nums, 0)
				subNums = append(subNums, nil)
			}
			field := len(subNums) - 1
			subNums[field] = append(subNums[field], 0)
		case '0' <= r && r <= '9':
			if len(nums) == 0 {
				nums = append(nums, 0)
				subNums = append(subNums, nil)
			}
			field := len(nums) - 1
			if n := len(subNums[field]); n > 0 {
				subNums[field][n-1] = subNums[field][n-1]*10 + int(r-'0')
			} else {
				nums[field] = nums[field]*10 + int(r-'0')
			}
		case r == runeEndOfSeq:
			return bad("incomplete CSI")
		default:
			break scan
		}
		r = next()
	}

	switch starter {
	case '<':
		if m, ok := matchMouseSGR(nums, r); ok {
			return Keystroke{mode: ModeMouseSGR, payload: m, mods: m.Mods, code: KeyMouseSGR, name: codeNames[KeyMouseSGR]}, nil
		}
		return bad("bad SGR mouse event")
	case '?':
		if da, ok := matchDeviceAttributes(nums, r); ok {
			if bridge.OnDeviceAttributes != nil {
				bridge.OnDeviceAttributes(da)
			}
			return Keystroke{}, errConsumed
		}
		if sy, ok := matchSync(nums, r); ok {
			code, name := KeySyncEnd, codeNames[KeySyncEnd]
			if sy.Begin {
				code, name = KeySyncBegin, codeNames[KeySyncBegin]
			}
			return Keystroke{mode: ModeSync, payload: sy, code: code, name: name}, nil
		}
		return bad("bad DEC private sequence")
	}

	if starter == 0 {
		if re, ok := matchResize(nums, r); ok {
			if bridge.OnResize != nil {
				bridge.OnResize(re.Rows, re.Cols)
			}
			return Keystroke{}, errConsumed
		}
	}
	if cpr, ok := matchCursorPositionReport(nums, r, starter); ok {
		return Keystroke{mode: ModeCursorPosition, payload: cpr}, nil
	}
	if begin, ok := matchBracketedPaste(nums, r); ok {
		return Keystroke{mode: ModeBracketedPaste, payload: BracketedPaste{}, mods: pasteMarkerMod(begin), code: KeyBracketedPaste, name: codeNames[KeyBracketedPaste]}, nil
	}
	if fv, ok := matchFocus(r, len(nums) > 0); ok {
		code, name := KeyFocusOut, codeNames[KeyFocusOut]
		if fv.In {
			code, name = KeyFocusIn, codeNames[KeyFocusIn]
		}
		return Keystroke{mode: ModeFocus, payload: fv, code: code, name: name}, nil
	}
	if len(nums) == 0 {
		if code, ok := tbl.ByBytes["\x1b["+string(r)]; ok {
			return Keystroke{code: code, name: tbl.NameByCode[code]}, nil
		}
	}
	if code, mod, ok := matchCSIByLast(nums, r); ok {
		return Keystroke{code: code, name: tbl.NameByCode[code], mods: mod}, nil
	}
	if rn, mod, ok := matchModifyOtherKeys(nums); ok && r == '~' {
		k := plainKey(rn, mod)
		k.mode = ModeModifyOtherKeys
		return k, nil
	}
	if ke, ok := matchKitty(nums, subNums, r); ok {
		code, name := kittyKeyName(ke)
		return Keystroke{mode: ModeKitty, payload: ke, mods: ke.Mods, code: code, name: name}, nil
	}
	if code, mod, ok := matchLegacyCSIModifier(nums, r); ok {
		return Keystroke{code: code, name: tbl.NameByCode[code], mods: mod, mode: ModeLegacyCSIModifier}, nil
	}
	if code, mod, ok := matchCSITilde(nums, r); ok {
		return Keystroke{code: code, name: tbl.NameByCode[code], mods: mod}, nil
	}

	return bad("bad CSI")
}

// pasteMarkerMod stashes which bracketed-paste marker was seen (begin or
// end) in the Mods field, since BracketedPaste itself carries no
// begin/end flag: ModShift set means "begin", clear means "end". The
// read loop in reader.go uses this to decide whether to start or
// stop accumulating pasted text, and clears it before handing the final
// Keystroke to the caller.
func pasteMarkerMod(begin bool) Mod {
	if begin {
		return ModShift
	}
	return 0
}
