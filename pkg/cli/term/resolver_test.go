//go:build unix

package term

import (
	"testing"

	"github.com/jquast/blessed/pkg/must"
	"github.com/jquast/blessed/pkg/testutil"
)

func TestReadRune_MultiByteUTF8(t *testing.T) {
	testutil.Set(t, &continuationByteTimeout, testutil.ScaledMs(20))

	pr, pw := must.Pipe()
	defer pr.Close()
	defer pw.Close()
	fr, err := newFileReader(pr)
	if err != nil {
		t.Fatal(err)
	}
	defer fr.Close()

	pw.WriteString("é") // 2-byte UTF-8 rune, 'é'
	r, err := readRune(fr, testutil.ScaledMs(200), false)
	if err != nil {
		t.Fatalf("got err %v, want nil", err)
	}
	if r != 'é' {
		t.Errorf("got %q, want %q", r, 'é')
	}
}

func TestReadRune_SingleByte(t *testing.T) {
	pr, pw := must.Pipe()
	defer pr.Close()
	defer pw.Close()
	fr, err := newFileReader(pr)
	if err != nil {
		t.Fatal(err)
	}
	defer fr.Close()

	pw.WriteString("x")
	r, err := readRune(fr, testutil.ScaledMs(200), false)
	if err != nil {
		t.Fatalf("got err %v, want nil", err)
	}
	if r != 'x' {
		t.Errorf("got %q, want %q", r, 'x')
	}
}

func TestReadRune_Latin1(t *testing.T) {
	pr, pw := must.Pipe()
	defer pr.Close()
	defer pw.Close()
	fr, err := newFileReader(pr)
	if err != nil {
		t.Fatal(err)
	}
	defer fr.Close()

	// 0xe9 is 'é' in Latin-1, but would be a UTF-8 continuation byte on
	// its own -- decoding it as latin1 must yield U+00E9 directly
	// without waiting for (nonexistent) continuation bytes.
	pw.Write([]byte{0xe9})
	r, err := readRune(fr, testutil.ScaledMs(200), true)
	if err != nil {
		t.Fatalf("got err %v, want nil", err)
	}
	if r != 'é' {
		t.Errorf("got %q, want %q", r, 'é')
	}
}
