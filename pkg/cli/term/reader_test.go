//go:build unix

package term

import (
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jquast/blessed/pkg/must"
	"github.com/jquast/blessed/pkg/testutil"
)

type stringCapture struct{ dst *string }

func (c stringCapture) Write(p []byte) (int, error) {
	*c.dst += string(p)
	return len(p), nil
}

func loggerCapturing(dst *string) *log.Logger {
	return log.New(stringCapture{dst}, "", 0)
}

func setupTerminal(t *testing.T) (*Terminal, *os.File) {
	pr, pw := must.Pipe()
	term, err := NewTerminal(pr, Options{TermType: "xterm", EscDelay: testutil.ScaledMs(20)})
	if err != nil {
		panic(err)
	}
	t.Cleanup(func() {
		term.Close()
		pr.Close()
		pw.Close()
	})
	return term, pw
}

func inkey(t *Terminal) Keystroke {
	timeout := testutil.ScaledMs(200)
	return t.Inkey(&timeout)
}

func TestTerminal_Inkey_PlainKeys(t *testing.T) {
	tests := []struct {
		input    string
		wantText string
		wantMod  Mod
	}{
		{"x", "x", 0},
		{"X", "X", 0},
		{" ", " ", 0},
		{"\001", "A", ModCtrl},
		{"\033", "\033", 0}, // a lone ESC with nothing following resolves below
		{"\000", "`", ModCtrl},
		{"\x1e", "6", ModCtrl},
		{"\x1f", "/", ModCtrl},
		{"\n", "\n", 0},
		{"\t", "\t", 0},
		{"\x7f", "\x7f", 0},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			term, w := setupTerminal(t)
			w.WriteString(test.input)
			k := inkey(term)
			if test.input == "\033" {
				code, ok := k.Code()
				if !ok || code != KeyEscape {
					t.Errorf("lone ESC: got code %v ok=%v, want KeyEscape", code, ok)
				}
				return
			}
			if k.Text() != test.wantText {
				t.Errorf("got text %q, want %q", k.Text(), test.wantText)
			}
			if k.Modifiers() != test.wantMod {
				t.Errorf("got mods %v, want %v", k.Modifiers(), test.wantMod)
			}
		})
	}
}

func TestTerminal_Inkey_AltKeys(t *testing.T) {
	term, w := setupTerminal(t)
	w.WriteString("\033a")
	k := inkey(term)
	if k.Text() != "a" || !k.IsAlt() {
		t.Errorf("got %+v, want Alt-a", k)
	}
}

func TestTerminal_Inkey_SS3Keys(t *testing.T) {
	tests := []struct {
		input string
		want  KeyCode
	}{
		{"\033OA", KeyUp},
		{"\033OH", KeyHome},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			term, w := setupTerminal(t)
			w.WriteString(test.input)
			k := inkey(term)
			code, ok := k.Code()
			if !ok || code != test.want {
				t.Errorf("got code %v ok=%v, want %v", code, ok, test.want)
			}
		})
	}
}

func TestTerminal_Inkey_CSIModifiers(t *testing.T) {
	tests := []struct {
		input string
		want  Mod
	}{
		{"\033[1;0A", 0},
		{"\033[1;1A", 0},
		{"\033[1;2A", ModShift},
		{"\033[1;3A", ModAlt},
		{"\033[1;4A", ModShift | ModAlt},
		{"\033[1;5A", ModCtrl},
		{"\033[1;6A", ModShift | ModCtrl},
		{"\033[1;7A", ModAlt | ModCtrl},
		{"\033[1;8A", ModShift | ModAlt | ModCtrl},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			term, w := setupTerminal(t)
			w.WriteString(test.input)
			k := inkey(term)
			code, ok := k.Code()
			if !ok || code != KeyUp {
				t.Errorf("got code %v ok=%v, want KeyUp", code, ok)
			}
			if k.Modifiers() != test.want {
				t.Errorf("got mods %v, want %v", k.Modifiers(), test.want)
			}
		})
	}
}

func TestTerminal_Inkey_CSITilde(t *testing.T) {
	term, w := setupTerminal(t)
	w.WriteString("\033[3~")
	k := inkey(term)
	code, ok := k.Code()
	if !ok || code != KeyDelete {
		t.Errorf("got code %v ok=%v, want KeyDelete", code, ok)
	}
}

func TestTerminal_Inkey_LegacyCSIModifier(t *testing.T) {
	term, w := setupTerminal(t)
	w.WriteString("\033[1^")
	k := inkey(term)
	code, ok := k.Code()
	if !ok || code != KeyHome {
		t.Errorf("got code %v ok=%v, want KeyHome", code, ok)
	}
	if k.Modifiers() != ModCtrl {
		t.Errorf("got mods %v, want ModCtrl", k.Modifiers())
	}
}

func TestTerminal_Inkey_BracketedPaste(t *testing.T) {
	term, w := setupTerminal(t)
	w.WriteString("\033[200~hello\033[201~")
	k := term.Inkey(durP(testutil.ScaledMs(200)))
	mode, ok := k.Mode()
	if !ok || mode != ModeBracketedPaste {
		t.Fatalf("got mode %v ok=%v, want ModeBracketedPaste", mode, ok)
	}
	paste, ok := k.Payload().(BracketedPaste)
	if !ok {
		t.Fatalf("payload is %T, want BracketedPaste", k.Payload())
	}
	if paste.Text != "hello" {
		t.Errorf("got paste text %q, want %q", paste.Text, "hello")
	}
}

func TestTerminal_Inkey_MouseSGR(t *testing.T) {
	term, w := setupTerminal(t)
	w.WriteString("\033[<0;3;4M")
	k := inkey(term)
	mode, ok := k.Mode()
	if !ok || mode != ModeMouseSGR {
		t.Fatalf("got mode %v ok=%v, want ModeMouseSGR", mode, ok)
	}
	ev := k.Payload().(MouseEvent)
	if ev.Row != 4 || ev.Col != 3 || ev.Button != 0 || !ev.Pressed {
		t.Errorf("got %+v, want row=4 col=3 button=0 pressed=true", ev)
	}
}

func TestTerminal_Inkey_MouseLegacy(t *testing.T) {
	term, w := setupTerminal(t)
	w.Write([]byte("\033[M\x00\x23\x24"))
	k := inkey(term)
	mode, ok := k.Mode()
	if !ok || mode != ModeMouseLegacy {
		t.Fatalf("got mode %v ok=%v, want ModeMouseLegacy", mode, ok)
	}
	ev := k.Payload().(MouseEvent)
	if ev.Row != 4 || ev.Col != 3 {
		t.Errorf("got %+v, want row=4 col=3", ev)
	}
}

func TestTerminal_Inkey_Focus(t *testing.T) {
	term, w := setupTerminal(t)
	w.WriteString("\033[I")
	k := inkey(term)
	mode, ok := k.Mode()
	if !ok || mode != ModeFocus {
		t.Fatalf("got mode %v ok=%v, want ModeFocus", mode, ok)
	}
	if !k.Payload().(FocusEvent).In {
		t.Errorf("got FocusEvent.In=false, want true")
	}
}

func TestTerminal_Inkey_CursorPositionReport(t *testing.T) {
	term, w := setupTerminal(t)
	w.WriteString("\033[3;4R")
	k := inkey(term)
	mode, ok := k.Mode()
	if !ok || mode != ModeCursorPosition {
		t.Fatalf("got mode %v ok=%v, want ModeCursorPosition", mode, ok)
	}
	cpr := k.Payload().(CursorPositionReport)
	if cpr.Row != 3 || cpr.Col != 4 {
		t.Errorf("got %+v, want row=3 col=4", cpr)
	}
}

func TestTerminal_Inkey_LinuxConsoleFunctionKeys(t *testing.T) {
	pr, pw := must.Pipe()
	term, err := NewTerminal(pr, Options{TermType: "linux", EscDelay: testutil.ScaledMs(20)})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		term.Close()
		pr.Close()
		pw.Close()
	})

	tests := []struct {
		input string
		want  KeyCode
	}{
		{"\033[[A", KeyF1},
		{"\033[[B", KeyF2},
		{"\033[[C", KeyF3},
		{"\033[[D", KeyF4},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			pw.WriteString(test.input)
			k := inkey(term)
			code, ok := k.Code()
			if !ok || code != test.want {
				t.Errorf("got code %v ok=%v, want %v", code, ok, test.want)
			}
		})
	}
}

func TestTerminal_Inkey_Kitty(t *testing.T) {
	term, w := setupTerminal(t)
	w.WriteString("\033[1089::99;5u")
	k := inkey(term)
	mode, ok := k.Mode()
	if !ok || mode != ModeKitty {
		t.Fatalf("got mode %v ok=%v, want ModeKitty", mode, ok)
	}
	ev := k.Payload().(KittyEvent)
	if ev.Codepoint != 1089 || ev.BaseLayout != 99 || ev.Mods != ModCtrl {
		t.Errorf("got %+v", ev)
	}
	if _, ok := k.Name(); !ok {
		t.Errorf("expected a synthesized name for a Kitty key event")
	}
}

func TestTerminal_Inkey_Kitty_FunctionalKey(t *testing.T) {
	term, w := setupTerminal(t)
	w.WriteString("\033[27;1:3u")
	k := inkey(term)
	code, ok := k.Code()
	if !ok || code != KeyEscape {
		t.Errorf("got code %v ok=%v, want KeyEscape", code, ok)
	}
	if name, ok := k.Name(); !ok || name != "KEY_ESCAPE_RELEASED" {
		t.Errorf("got name %q ok=%v, want KEY_ESCAPE_RELEASED", name, ok)
	}
}

func TestTerminal_Inkey_DeviceAttributesRoutedToBridge(t *testing.T) {
	term, w := setupTerminal(t)
	var got DeviceAttributes
	called := false
	term.SetQueryBridge(QueryBridge{OnDeviceAttributes: func(da DeviceAttributes) {
		called = true
		got = da
	}})
	w.WriteString("\033[?62;4c")
	k := inkey(term)
	if !called {
		t.Fatalf("OnDeviceAttributes callback was not invoked")
	}
	if got.ServiceClass != 62 || !got.SupportsSixel() {
		t.Errorf("got %+v, want ServiceClass=62 sixel=true", got)
	}
	if k != (Keystroke{}) {
		t.Errorf("got keystroke %+v, want zero value", k)
	}
}

func TestTerminal_Inkey_ResizeRoutedToBridge(t *testing.T) {
	term, w := setupTerminal(t)
	var gotRows, gotCols int
	called := false
	term.SetQueryBridge(QueryBridge{OnResize: func(rows, cols int) {
		called = true
		gotRows, gotCols = rows, cols
	}})
	w.WriteString("\033[48;40;100;480;1000t")
	k := inkey(term)
	if !called {
		t.Fatalf("OnResize callback was not invoked")
	}
	if gotRows != 40 || gotCols != 100 {
		t.Errorf("got rows=%d cols=%d, want rows=40 cols=100", gotRows, gotCols)
	}
	if k != (Keystroke{}) {
		t.Errorf("got keystroke %+v, want zero value", k)
	}
}

func TestTerminal_Inkey_Sync(t *testing.T) {
	tests := []struct {
		input     string
		wantBegin bool
	}{
		{"\033[?2026h", true},
		{"\033[?2026l", false},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			term, w := setupTerminal(t)
			w.WriteString(test.input)
			k := inkey(term)
			mode, ok := k.Mode()
			if !ok || mode != ModeSync {
				t.Fatalf("got mode %v ok=%v, want ModeSync", mode, ok)
			}
			if k.Payload().(SyncEvent).Begin != test.wantBegin {
				t.Errorf("got %+v, want Begin=%v", k.Payload(), test.wantBegin)
			}
		})
	}
}

func TestTerminal_Inkey_Latin1Encoding(t *testing.T) {
	pr, pw := must.Pipe()
	term, err := NewTerminal(pr, Options{TermType: "xterm", EscDelay: testutil.ScaledMs(20), Encoding: "latin1"})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		term.Close()
		pr.Close()
		pw.Close()
	})

	pw.Write([]byte{0xe9}) // 'é' in Latin-1; a lone UTF-8 continuation byte otherwise
	k := inkey(term)
	if k.Text() != "é" {
		t.Errorf("got text %q, want %q", k.Text(), "é")
	}
}

func TestTerminal_Ungetch(t *testing.T) {
	term, _ := setupTerminal(t)
	term.Ungetch("ab")
	k1 := inkey(term)
	k2 := inkey(term)
	if k1.Text() != "a" || k2.Text() != "b" {
		t.Errorf("got %q %q, want \"a\" \"b\"", k1.Text(), k2.Text())
	}
}

func TestTerminal_Flushinp(t *testing.T) {
	term, _ := setupTerminal(t)
	term.Ungetch("ab")
	term.Flushinp()
	zero := time.Duration(0)
	k := term.Inkey(&zero)
	if k != (Keystroke{}) {
		t.Errorf("got %+v after Flushinp, want zero value", k)
	}
}

func durP(d time.Duration) *time.Duration { return &d }

func TestTerminal_Inkey_BadSequenceIsRecoveredAndLogged(t *testing.T) {
	tests := []struct {
		input      string
		wantErrMsg string
	}{
		{"\033[M", "incomplete mouse event"},
		{"\033[M1", "incomplete mouse event"},
		{"\033[1", "incomplete CSI"},
		{"\033[1R", "bad CSI"},
		{"\033[1;2;3A", "bad CSI"},
		{"\033[x", "bad CSI"},
		{"\033Oz", "bad G3"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			term, w := setupTerminal(t)
			var logged string
			term.SetLogger(loggerCapturing(&logged))
			w.WriteString(test.input)

			// The bad sequence is logged and recovered from; with no
			// further input the read eventually times out.
			timeout := testutil.ScaledMs(40)
			k := term.Inkey(&timeout)
			if k != (Keystroke{}) {
				t.Errorf("got keystroke %+v after bad sequence, want zero value", k)
			}
			if logged == "" {
				t.Fatalf("no decoding error was logged")
			}
			if !strings.Contains(logged, test.wantErrMsg) {
				t.Errorf("got logged %q, want it to contain %q", logged, test.wantErrMsg)
			}
		})
	}
}
