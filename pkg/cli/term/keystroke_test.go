package term

import "testing"

func TestKeystroke_Matches(t *testing.T) {
	tests := []struct {
		name string
		k    Keystroke
		spec string
		ic   bool
		want bool
	}{
		{"plain rune", Keystroke{text: "a"}, "a", false, true},
		{"plain rune case mismatch", Keystroke{text: "a"}, "A", false, false},
		{"plain rune ignore case", Keystroke{text: "a"}, "A", true, true},
		{"ctrl rune", Keystroke{text: "A", mods: ModCtrl}, "CTRL_A", false, true},
		{"ctrl rune wrong mods", Keystroke{text: "A", mods: ModCtrl}, "A", false, false},
		{"named key", Keystroke{code: KeyUp, name: "KEY_UP"}, "UP", false, true},
		{"named key with KEY_ prefix", Keystroke{code: KeyUp, name: "KEY_UP"}, "KEY_UP", false, true},
		{"modified named key", Keystroke{code: KeyUp, name: "KEY_UP", mods: ModCtrl | ModAlt}, "CTRL_ALT_UP", false, true},
		{"modifier order does not matter in spec", Keystroke{code: KeyUp, name: "KEY_UP", mods: ModCtrl | ModAlt}, "ALT_CTRL_UP", false, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.k.Matches(test.spec, test.ic)
			if got != test.want {
				t.Errorf("Matches(%q, %v) = %v, want %v", test.spec, test.ic, got, test.want)
			}
		})
	}
}

func TestKeystroke_IsSequence(t *testing.T) {
	if (Keystroke{text: "a"}).IsSequence() {
		t.Errorf("plain rune reported as sequence")
	}
	if !(Keystroke{code: KeyUp}).IsSequence() {
		t.Errorf("named key not reported as sequence")
	}
	if !(Keystroke{mode: ModeFocus, code: KeyFocusIn, name: "KEY_FOCUS_IN"}).IsSequence() {
		t.Errorf("protocol event not reported as sequence")
	}
}

func TestKeystroke_Value(t *testing.T) {
	if v := (Keystroke{text: "x"}).Value(); v != "x" {
		t.Errorf("got %q, want %q", v, "x")
	}
	if v := (Keystroke{code: KeyUp, name: "KEY_UP"}).Value(); v != "" {
		t.Errorf("got %q, want empty string for a named application key", v)
	}
	if v := (Keystroke{text: "A", mods: ModCtrl, name: "CTRL_A"}).Value(); v != "A" {
		t.Errorf("got %q, want %q", v, "A")
	}
	if v := (Keystroke{text: "A", mods: ModCtrl | ModAlt, name: "CTRL_ALT_A"}).Value(); v != "A" {
		t.Errorf("got %q, want %q", v, "A")
	}
}
