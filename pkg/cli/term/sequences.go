package term

import "sort"

// TerminfoFunc looks up the string value of a terminfo capability (e.g.
// "kcuu1") for the current terminal, returning "" if the terminal's
// terminfo entry does not define it. This is the entire external
// collaborator this package needs for capability lookup; callers wanting
// the system terminfo database supply a func backed by cgo or a vendored
// compiler, and callers content with the xterm-family defaults can use
// StaticTerminfo.
type TerminfoFunc func(capname string) string

// SequenceTable is the immutable result of resolving a terminal's
// capabilities (and the literal mixins) into a lookup table used by the
// resolver.
type SequenceTable struct {
	// ByBytes maps a literal byte sequence to the KeyCode it represents.
	ByBytes map[string]KeyCode
	// NameByCode maps a KeyCode back to its canonical name.
	NameByCode map[KeyCode]string
	// Prefixes holds every proper, non-empty prefix of every key in
	// ByBytes. Inkey's resolver does not consult it: it tells a complete
	// sequence from a partial one by the CSI/SS3 grammar as it scans.
	Prefixes map[string]struct{}
	// Ordered holds the keys of ByBytes sorted longest-first. Inkey's
	// resolver does not consult it either; it looks whole sequences up
	// in ByBytes directly.
	Ordered []string
}

// BuildSequenceTable builds a SequenceTable by walking terminfoCapnames
// through lookup, then overlaying defaultSequenceMixin and overrideMixin,
// the way blessed.keyboard.get_keyboard_sequences walks
// curses.has_key._capability_names and then applies
// DEFAULT_SEQUENCE_MIXIN and CURSES_KEYCODE_OVERRIDE_MIXIN on top.
func BuildSequenceTable(lookup TerminfoFunc) *SequenceTable {
	byBytes := make(map[string]KeyCode)

	for code, capname := range terminfoCapnames {
		if lookup == nil {
			continue
		}
		if seq := lookup(capname); seq != "" {
			byBytes[seq] = code
		}
	}
	for seq, code := range defaultSequenceMixin {
		byBytes[seq] = code
	}
	for seq, code := range overrideMixin {
		byBytes[seq] = code
	}
	alternativeLeftRight(byBytes)

	nameByCode := make(map[KeyCode]string, len(codeNames))
	for code, name := range codeNames {
		nameByCode[code] = name
	}

	prefixes := make(map[string]struct{})
	ordered := make([]string, 0, len(byBytes))
	for seq := range byBytes {
		ordered = append(ordered, seq)
		for i := 1; i < len(seq); i++ {
			prefixes[seq[:i]] = struct{}{}
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	return &SequenceTable{
		ByBytes:    byBytes,
		NameByCode: nameByCode,
		Prefixes:   prefixes,
		Ordered:    ordered,
	}
}

// alternativeLeftRight adds the well-known SS3-style Home/End aliases
// (\x1bOH, \x1bOF) when a terminal's terminfo entry only defines the
// CSI-style forms, mirroring
// blessed.keyboard._alternative_left_right's handling of terminals that
// send either family interchangeably depending on application-keypad
// mode.
func alternativeLeftRight(byBytes map[string]KeyCode) {
	if _, ok := byBytes["\x1bOH"]; !ok {
		if _, ok := byBytes["\x1b[H"]; ok {
			byBytes["\x1bOH"] = KeyHome
		}
	}
	if _, ok := byBytes["\x1bOF"]; !ok {
		if _, ok := byBytes["\x1b[F"]; ok {
			byBytes["\x1bOF"] = KeyEnd
		}
	}
}
