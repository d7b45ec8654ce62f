// Package color wraps strings in ANSI SGR escape sequences.
//
// A Style is any func(string) string. The package ships one Style per
// chalk-style modifier (Cyan, BgRed, Bold, ...) and Chain combines them
// so that Chain(BgRed, White, Bold) renders like chalk.bgRed.white.bold.
// Parse builds the same chain from its dotted name, which is what
// configuration files use.
//
// Whether escape codes are emitted at all is a process-wide switch.
// At init it follows the usual conventions: FORCE_COLOR wins, then
// NO_COLOR and TERM=dumb disable colour, and otherwise colour is on only
// when stdout is a terminal. SetEnabled overrides the detected value.
// A disabled Style returns its input unchanged.
package color
