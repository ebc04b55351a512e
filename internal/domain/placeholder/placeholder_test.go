package placeholder

import (
	"testing"

	"github.com/launchbynttdata/pixman-version-gen/internal/domain/mesonver"
)

const headerTemplate = "#define MAJOR @PIXMAN_VERSION_MAJOR@\n#define MINOR @PIXMAN_VERSION_MINOR@\n#define MICRO @PIXMAN_VERSION_MICRO@"

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		version  mesonver.Version
		template string
		expected string
	}{
		{
			name:     "round trip header",
			version:  mesonver.Version{Major: "1", Minor: "2", Micro: "3"},
			template: headerTemplate,
			expected: "#define MAJOR 1\n#define MINOR 2\n#define MICRO 3",
		},
		{
			name:     "multi digit components",
			version:  mesonver.Version{Major: "0", Minor: "99", Micro: "10"},
			template: headerTemplate,
			expected: "#define MAJOR 0\n#define MINOR 99\n#define MICRO 10",
		},
		{
			name:     "every occurrence replaced",
			version:  mesonver.Version{Major: "4", Minor: "5", Micro: "6"},
			template: "@PIXMAN_VERSION_MAJOR@.@PIXMAN_VERSION_MAJOR@ @PIXMAN_VERSION_MICRO@@PIXMAN_VERSION_MICRO@",
			expected: "4.4 66",
		},
		{
			name:     "unknown tokens untouched",
			version:  mesonver.Version{Major: "1", Minor: "2", Micro: "3"},
			template: "@PIXMAN_VERSION@ @FOO@ @PIXMAN_VERSION_MINOR@ PIXMAN_VERSION_MAJOR",
			expected: "@PIXMAN_VERSION@ @FOO@ 2 PIXMAN_VERSION_MAJOR",
		},
		{
			name:     "no tokens",
			version:  mesonver.Version{Major: "1", Minor: "2", Micro: "3"},
			template: "#pragma once\n",
			expected: "#pragma once\n",
		},
		{
			name:     "values substituted literally",
			version:  mesonver.Version{Major: "$1", Minor: `\0`, Micro: ".*"},
			template: headerTemplate,
			expected: "#define MAJOR $1\n#define MINOR \\0\n#define MICRO .*",
		},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Render(tc.template, NewMapping(tc.version))
			if got != tc.expected {
				t.Fatalf("expected %q got %q", tc.expected, got)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	t.Parallel()

	m := NewMapping(mesonver.Version{Major: "0", Minor: "43", Micro: "5"})
	once := Render(headerTemplate+" @OTHER@", m)
	twice := Render(once, m)
	if once != twice {
		t.Fatalf("render not idempotent: %q vs %q", once, twice)
	}
}

func TestRenderSkipsMissingKeys(t *testing.T) {
	t.Parallel()

	got := Render(headerTemplate, Mapping{KeyMajor: "9"})
	expected := "#define MAJOR 9\n#define MINOR @PIXMAN_VERSION_MINOR@\n#define MICRO @PIXMAN_VERSION_MICRO@"
	if got != expected {
		t.Fatalf("expected %q got %q", expected, got)
	}
}

func TestUnresolved(t *testing.T) {
	t.Parallel()

	got := Unresolved("@A@ x @PIXMAN_VERSION@ @A@ user@example.com @ B@")
	if len(got) != 2 || got[0] != "@A@" || got[1] != "@PIXMAN_VERSION@" {
		t.Fatalf("unexpected unresolved tokens %v", got)
	}
	if Unresolved("#define X 1") != nil {
		t.Fatal("expected nil for text without tokens")
	}
}
