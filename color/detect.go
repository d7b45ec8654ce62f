package color

import (
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

var enabled atomic.Bool

func init() {
	enabled.Store(Detect(os.LookupEnv, os.Stdout.Fd()))
}

// Enabled reports whether styles currently emit escape codes.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled turns escape codes on or off for every Style and returns
// the previous setting.
func SetEnabled(on bool) bool {
	return enabled.Swap(on)
}

// Detect decides colour support for the terminal behind fd.
func Detect(lookup func(string) (string, bool), fd uintptr) bool {
	if v, ok := lookup("FORCE_COLOR"); ok {
		return v != "0" && v != "false"
	}
	if v, ok := lookup("NO_COLOR"); ok && v != "" {
		return false
	}
	if v, _ := lookup("TERM"); v == "dumb" {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
