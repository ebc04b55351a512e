// Package mesonver locates the project version declared in a Meson build file.
package mesonver

import (
	"errors"
	"regexp"
)

// ErrVersionNotFound is returned when no project(...) version declaration matches.
var ErrVersionNotFound = errors.New("mesonver: no version declaration found")

// declPattern matches the first project(...) call whose argument list carries a
// version keyword. The argument list may span lines and hold bracketed lists or
// >= constraints ahead of version; the captured numeral never crosses a line.
// Letters and digits are matched in any script.
//
//	decl    = "project" {" "} "(" {argchar} (" " | ",") "version" {" "} ":" {" "} quote numeral quote
//	argchar = "\n" | "'" | `"` | letter | number | "_" | ":" | "," | " " | "[" | "]" | "." | ">" | "="
//	numeral = {decimal digit | "."}
//	quote   = "'" | `"`
var declPattern = regexp.MustCompile(`project[ ]*\([\n'"\p{L}\p{N}_:, \[\]\.>=]*[ ,]version[ ]*:[ ]*['"]([\p{Nd}.]*)['"]`)

// Extract returns the version triple from the first declaration found in text.
func Extract(text string) (Version, error) {
	match := declPattern.FindStringSubmatch(text)
	if match == nil {
		return Version{}, ErrVersionNotFound
	}
	return Parse(match[1])
}
