// Command inkeydemo prints each keystroke read from the terminal until
// 'q' or Ctrl-C is pressed. It is the Go counterpart of blessed's
// keyboard_simple.py and keyboard_special_keys.py demo scripts.
package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	blessedterm "github.com/jquast/blessed/pkg/cli/term"
	"github.com/jquast/blessed/pkg/sys"
)

func main() {
	fd := int(os.Stdin.Fd())
	if !sys.IsATTY(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "inkeydemo: stdin is not a terminal")
		os.Exit(1)
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "inkeydemo: entering raw mode:", err)
		os.Exit(1)
	}
	defer term.Restore(fd, oldState)

	tty, err := blessedterm.NewTerminal(os.Stdin, blessedterm.OptionsFromEnv())
	if err != nil {
		fmt.Fprintln(os.Stderr, "inkeydemo:", err)
		os.Exit(1)
	}
	defer tty.Close()

	fmt.Print("Press any key (q or Ctrl-C to quit)\r\n")
	for {
		timeout := 5 * time.Minute
		k := tty.Inkey(&timeout)

		if mode, ok := k.Mode(); ok {
			switch mode {
			case blessedterm.ModeMouseSGR, blessedterm.ModeMouseLegacy:
				fmt.Printf("Mouse event: %+v\r\n", k.Payload())
			case blessedterm.ModeBracketedPaste:
				fmt.Printf("Pasted: %q\r\n", k.Payload())
			case blessedterm.ModeFocus:
				fmt.Printf("Focus event: %+v\r\n", k.Payload())
			default:
				fmt.Printf("Protocol event: %+v\r\n", k.Payload())
			}
			continue
		}

		if name, ok := k.Name(); ok {
			fmt.Printf("Special key: %s\r\n", name)
		} else if k.Text() != "" {
			fmt.Printf("Regular character: %q (mods=%v)\r\n", k.Text(), k.Modifiers())
		} else {
			continue
		}

		if k.IsCtrl() && k.Text() == "C" {
			return
		}
		if k.Text() == "q" {
			return
		}
	}
}
