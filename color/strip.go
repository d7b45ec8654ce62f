package color

import "regexp"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// Strip removes ANSI escape sequences from s.
func Strip(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
