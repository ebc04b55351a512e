// Package placeholder renders @NAME@ header templates from a version triple.
package placeholder

import (
	"regexp"
	"strings"

	"github.com/launchbynttdata/pixman-version-gen/internal/domain/mesonver"
)

// Placeholder keys recognised in header templates.
const (
	KeyMajor = "PIXMAN_VERSION_MAJOR"
	KeyMinor = "PIXMAN_VERSION_MINOR"
	KeyMicro = "PIXMAN_VERSION_MICRO"
)

const delimiter = "@"

var keys = []string{KeyMajor, KeyMinor, KeyMicro}

var tokenPattern = regexp.MustCompile(`@[A-Za-z_][A-Za-z0-9_]*@`)

// Mapping binds each placeholder key to its substitution value.
type Mapping map[string]string

// NewMapping builds the fixed three-key mapping for v.
func NewMapping(v mesonver.Version) Mapping {
	return Mapping{
		KeyMajor: v.Major,
		KeyMinor: v.Minor,
		KeyMicro: v.Micro,
	}
}

// Token wraps key in the template delimiter.
func Token(key string) string {
	return delimiter + key + delimiter
}

// Render replaces every occurrence of each recognised token with its mapped value.
// Replacement is literal; tokens for unknown keys are left as they are.
func Render(text string, m Mapping) string {
	out := text
	for _, key := range keys {
		value, ok := m[key]
		if !ok {
			continue
		}
		out = strings.ReplaceAll(out, Token(key), value)
	}
	return out
}

// Unresolved lists the distinct @NAME@ tokens still present in text, in order of appearance.
func Unresolved(text string) []string {
	found := tokenPattern.FindAllString(text, -1)
	if len(found) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(found))
	out := make([]string, 0, len(found))
	for _, token := range found {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}
