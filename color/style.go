package color

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Style maps a string to its styled form.
type Style func(s string) string

// sgr returns a Style that wraps s in the given open/close SGR codes.
func sgr(open, close int) Style {
	prefix := "\x1b[" + strconv.Itoa(open) + "m"
	suffix := "\x1b[" + strconv.Itoa(close) + "m"
	return func(s string) string {
		if !Enabled() {
			return s
		}
		return prefix + s + suffix
	}
}

// Modifiers
var (
	Bold      = sgr(1, 22)
	Dim       = sgr(2, 22)
	Italic    = sgr(3, 23)
	Underline = sgr(4, 24)
	Inverse   = sgr(7, 27)
)

// Foreground colours
var (
	Black   = sgr(30, 39)
	Red     = sgr(31, 39)
	Green   = sgr(32, 39)
	Yellow  = sgr(33, 39)
	Blue    = sgr(34, 39)
	Magenta = sgr(35, 39)
	Cyan    = sgr(36, 39)
	White   = sgr(37, 39)
	Gray    = sgr(90, 39)

	RedBright     = sgr(91, 39)
	GreenBright   = sgr(92, 39)
	YellowBright  = sgr(93, 39)
	BlueBright    = sgr(94, 39)
	MagentaBright = sgr(95, 39)
	CyanBright    = sgr(96, 39)
	WhiteBright   = sgr(97, 39)
)

// Background colours
var (
	BgBlack   = sgr(40, 49)
	BgRed     = sgr(41, 49)
	BgGreen   = sgr(42, 49)
	BgYellow  = sgr(43, 49)
	BgBlue    = sgr(44, 49)
	BgMagenta = sgr(45, 49)
	BgCyan    = sgr(46, 49)
	BgWhite   = sgr(47, 49)
	BgGray    = sgr(100, 49)
)

// None returns s unchanged.
func None(s string) string { return s }

// Chain applies styles outermost first, so Chain(BgRed, White)(s) is
// BgRed(White(s)). An empty chain is None.
func Chain(styles ...Style) Style {
	switch len(styles) {
	case 0:
		return None
	case 1:
		return styles[0]
	}
	return func(s string) string {
		for i := len(styles) - 1; i >= 0; i-- {
			s = styles[i](s)
		}
		return s
	}
}

var names = map[string]Style{
	"bold":      Bold,
	"dim":       Dim,
	"italic":    Italic,
	"underline": Underline,
	"inverse":   Inverse,

	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
	"gray":    Gray,
	"grey":    Gray,

	"blackbright":   Gray,
	"redbright":     RedBright,
	"greenbright":   GreenBright,
	"yellowbright":  YellowBright,
	"bluebright":    BlueBright,
	"magentabright": MagentaBright,
	"cyanbright":    CyanBright,
	"whitebright":   WhiteBright,

	"bgblack":   BgBlack,
	"bgred":     BgRed,
	"bggreen":   BgGreen,
	"bgyellow":  BgYellow,
	"bgblue":    BgBlue,
	"bgmagenta": BgMagenta,
	"bgcyan":    BgCyan,
	"bgwhite":   BgWhite,
	"bggray":    BgGray,
	"bggrey":    BgGray,
}

// Parse turns a dotted chalk-style name such as "bgRed.white.bold" into
// a Style. Names are case-insensitive. "none" and the empty string yield
// None.
func Parse(name string) (Style, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "none") {
		return None, nil
	}

	parts := strings.Split(name, ".")
	styles := make([]Style, 0, len(parts))
	for _, p := range parts {
		st, ok := names[strings.ToLower(p)]
		if !ok {
			return nil, errors.Errorf("unknown color %q in %q", p, name)
		}
		styles = append(styles, st)
	}
	return Chain(styles...), nil
}

// Valid reports whether Parse would accept name.
func Valid(name string) bool {
	_, err := Parse(name)
	return err == nil
}
