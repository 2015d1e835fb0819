package term

import "testing"

func TestXtermModify(t *testing.T) {
	tests := []struct {
		param int
		want  Mod
		ok    bool
	}{
		{0, 0, false},
		{1, 0, true},
		{2, ModShift, true},
		{3, ModAlt, true},
		{5, ModCtrl, true},
		{8, ModShift | ModAlt | ModCtrl, true},
		{9, ModAlt, true}, // Meta folded into Alt
		{17, 0, false},
		{-1, 0, false},
	}
	for _, test := range tests {
		mod, ok := xtermModify(test.param)
		if ok != test.ok || mod != test.want {
			t.Errorf("xtermModify(%d) = %v, %v; want %v, %v", test.param, mod, ok, test.want, test.ok)
		}
	}
}

func TestCtrlModify(t *testing.T) {
	tests := []struct {
		in       rune
		wantR    rune
		wantMod  Mod
	}{
		{0x0, '`', ModCtrl},
		{0x1e, '6', ModCtrl},
		{0x1f, '/', ModCtrl},
		{'\t', '\t', 0},
		{'\r', '\r', 0},
		{0x7f, 0x7f, 0},
		{0x1, 'A', ModCtrl},
		{0x1d, ']', ModCtrl},
		{'x', 'x', 0},
	}
	for _, test := range tests {
		r, mod := ctrlModify(test.in)
		if r != test.wantR || mod != test.wantMod {
			t.Errorf("ctrlModify(%q) = %q, %v; want %q, %v", test.in, r, mod, test.wantR, test.wantMod)
		}
	}
}

func TestModString(t *testing.T) {
	tests := []struct {
		m    Mod
		want string
	}{
		{0, ""},
		{ModCtrl, "CTRL"},
		{ModAlt, "ALT"},
		{ModShift, "SHIFT"},
		{ModCtrl | ModAlt, "CTRL_ALT"},
		{ModCtrl | ModAlt | ModShift, "CTRL_ALT_SHIFT"},
	}
	for _, test := range tests {
		if got := test.m.String(); got != test.want {
			t.Errorf("Mod(%d).String() = %q, want %q", test.m, got, test.want)
		}
	}
}
