package term

import (
	"testing"
	"time"

	"github.com/jquast/blessed/pkg/testutil"
)

func TestOptionsFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		testutil.Unsetenv(t, "ESCDELAY")
		testutil.Unsetenv(t, "TERM")

		opts := OptionsFromEnv()
		if opts.EscDelay != DefaultEscDelay {
			t.Errorf("got EscDelay %v, want %v", opts.EscDelay, DefaultEscDelay)
		}
		if opts.TermType != "xterm" {
			t.Errorf("got TermType %q, want xterm", opts.TermType)
		}
	})

	t.Run("ESCDELAY in milliseconds", func(t *testing.T) {
		testutil.Setenv(t, "ESCDELAY", "100")

		opts := OptionsFromEnv()
		if opts.EscDelay != 100*time.Millisecond {
			t.Errorf("got EscDelay %v, want 100ms", opts.EscDelay)
		}
	})

	t.Run("invalid ESCDELAY ignored", func(t *testing.T) {
		testutil.Setenv(t, "ESCDELAY", "not-a-number")

		opts := OptionsFromEnv()
		if opts.EscDelay != DefaultEscDelay {
			t.Errorf("got EscDelay %v, want default %v", opts.EscDelay, DefaultEscDelay)
		}
	})
}
