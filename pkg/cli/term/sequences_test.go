package term

import "testing"

func TestBuildSequenceTable_XtermDefaults(t *testing.T) {
	tbl := BuildSequenceTable(StaticTerminfo("xterm-256color"))

	tests := []struct {
		seq  string
		want KeyCode
	}{
		{"\x1bOA", KeyUp},
		{"\x1bOH", KeyHome},
		{"\x1b[3~", KeyDelete},
		{"\x1bOp", KeyKP0},
		{"\x09", KeyTab},
	}
	for _, test := range tests {
		got, ok := tbl.ByBytes[test.seq]
		if !ok {
			t.Errorf("sequence %q not in table", test.seq)
			continue
		}
		if got != test.want {
			t.Errorf("sequence %q -> %v, want %v", test.seq, got, test.want)
		}
	}
}

func TestBuildSequenceTable_Prefixes(t *testing.T) {
	tbl := BuildSequenceTable(StaticTerminfo("xterm"))
	if _, ok := tbl.Prefixes["\x1b"]; !ok {
		t.Errorf("expected \\x1b to be a prefix of some sequence")
	}
	if _, ok := tbl.Prefixes["\x1bO"]; !ok {
		t.Errorf("expected \\x1bO to be a prefix of some sequence")
	}
}

func TestBuildSequenceTable_OrderedLongestFirst(t *testing.T) {
	tbl := BuildSequenceTable(StaticTerminfo("xterm"))
	for i := 1; i < len(tbl.Ordered); i++ {
		if len(tbl.Ordered[i-1]) < len(tbl.Ordered[i]) {
			t.Fatalf("Ordered not longest-first at index %d: %q before %q", i, tbl.Ordered[i-1], tbl.Ordered[i])
		}
	}
}

func TestStaticTerminfo_UnknownFallsBackToXterm(t *testing.T) {
	unknown := StaticTerminfo("some-made-up-terminal")
	xterm := StaticTerminfo("xterm")
	if unknown("kcuu1") != xterm("kcuu1") {
		t.Errorf("unknown term type did not fall back to xterm capabilities")
	}
}
