package mesonver

import (
	"errors"
	"fmt"
	"strings"

	semver "github.com/blang/semver/v4"
)

// ErrMalformedVersion is returned when a version numeral has fewer than three components.
var ErrMalformedVersion = errors.New("mesonver: malformed version")

// Version is the major/minor/micro triple exactly as written in the build file.
// Components are kept as text so leading zeros and formatting survive substitution.
type Version struct {
	Major string `json:"major" yaml:"major"`
	Minor string `json:"minor" yaml:"minor"`
	Micro string `json:"micro" yaml:"micro"`
}

// Parse splits a dotted numeral and returns its first three components.
func Parse(numeral string) (Version, error) {
	parts := strings.Split(numeral, ".")
	if len(parts) < 3 {
		return Version{}, fmt.Errorf("%w: %q has %d component(s), need 3", ErrMalformedVersion, numeral, len(parts))
	}
	return Version{Major: parts[0], Minor: parts[1], Micro: parts[2]}, nil
}

// String returns the dotted form of the triple.
func (v Version) String() string {
	return v.Major + "." + v.Minor + "." + v.Micro
}

// Semver interprets the triple as a strict semantic version.
// Leading zeros or empty components are rejected.
func (v Version) Semver() (semver.Version, error) {
	parsed, err := semver.Parse(v.String())
	if err != nil {
		return semver.Version{}, fmt.Errorf("interpreting %q as semver: %w", v.String(), err)
	}
	return parsed, nil
}
