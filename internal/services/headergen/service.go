package headergen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	semver "github.com/blang/semver/v4"

	"github.com/launchbynttdata/pixman-version-gen/internal/domain/mesonver"
	"github.com/launchbynttdata/pixman-version-gen/internal/domain/placeholder"
)

var (
	ErrNilSource     = errors.New("headergen service: nil source")
	ErrEmptyBuild    = errors.New("headergen service: empty build file path")
	ErrEmptyTemplate = errors.New("headergen service: empty template path")
	ErrNotSemver     = errors.New("headergen service: version is not valid semver")
)

// Source reads input files for the generator.
type Source interface {
	ReadFile(path string) ([]byte, error)
}

// OSSource reads from the local filesystem.
type OSSource struct{}

// ReadFile implements Source.
func (OSSource) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Clean(path))
}

// Config captures the inputs for a single generation run.
type Config struct {
	BuildFile    string
	TemplateFile string
	StrictSemver bool
}

// Result summarizes a generation run.
type Result struct {
	Version     mesonver.Version
	Mapping     placeholder.Mapping
	Output      string
	Unresolved  []string
	Semver      semver.Version
	SemverValid bool
	SemverErr   error
}

// Service extracts the build version and renders the header template with it.
type Service struct {
	source Source
}

// NewService constructs a Service instance.
func NewService(source Source) Service {
	return Service{source: source}
}

// Extract reads the build file and returns its declared version.
func (s Service) Extract(buildFile string) (mesonver.Version, error) {
	if s.source == nil {
		return mesonver.Version{}, ErrNilSource
	}

	path := strings.TrimSpace(buildFile)
	if path == "" {
		return mesonver.Version{}, ErrEmptyBuild
	}

	contents, err := s.source.ReadFile(path)
	if err != nil {
		return mesonver.Version{}, fmt.Errorf("reading build file: %w", err)
	}

	v, err := mesonver.Extract(string(contents))
	if err != nil {
		return mesonver.Version{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Generate runs extraction followed by rendering. The template is not read
// unless a version was extracted.
func (s Service) Generate(cfg Config) (Result, error) {
	if s.source == nil {
		return Result{}, ErrNilSource
	}
	if strings.TrimSpace(cfg.TemplateFile) == "" {
		return Result{}, ErrEmptyTemplate
	}

	v, err := s.Extract(cfg.BuildFile)
	if err != nil {
		return Result{}, err
	}

	result := Result{Version: v, Mapping: placeholder.NewMapping(v)}

	parsed, semverErr := v.Semver()
	if semverErr != nil {
		if cfg.StrictSemver {
			return Result{}, fmt.Errorf("%w: %w", ErrNotSemver, semverErr)
		}
		result.SemverErr = semverErr
	} else {
		result.Semver = parsed
		result.SemverValid = true
	}

	template, err := s.source.ReadFile(strings.TrimSpace(cfg.TemplateFile))
	if err != nil {
		return Result{}, fmt.Errorf("reading template: %w", err)
	}

	result.Output = placeholder.Render(string(template), result.Mapping)
	result.Unresolved = placeholder.Unresolved(result.Output)
	return result, nil
}
