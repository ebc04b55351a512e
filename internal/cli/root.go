package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/launchbynttdata/pixman-version-gen/internal/config"
	"github.com/launchbynttdata/pixman-version-gen/internal/domain/mesonver"
	"github.com/launchbynttdata/pixman-version-gen/internal/logging"
	"github.com/launchbynttdata/pixman-version-gen/internal/services/headergen"
	"github.com/launchbynttdata/pixman-version-gen/internal/version"
)

const (
	envOutput   = "PVG_OUTPUT"
	envLogLevel = "PVG_LOG_LEVEL"
	envStrict   = "PVG_STRICT_SEMVER"
	envFormat   = "PVG_FORMAT"

	flagOutput   = "output"
	flagLogLevel = "log-level"
	flagStrict   = "strict-semver"
	flagFormat   = "format"

	buildFileName  = "meson.build"
	templateSuffix = ".h.in"

	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	ErrInvalidBuildFile = errors.New("build file must be named " + buildFileName)
	ErrInvalidTemplate  = errors.New("template must end with " + templateSuffix)
)

// Execute runs the CLI root command with the provided context.
func Execute(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return newRootCommand().ExecuteContext(ctx)
}

type rootFlagSet struct {
	logLevel *stringFlag
}

type generateFlagSet struct {
	output *stringFlag
	strict *boolFlag
}

type runtimeConfig struct {
	resolver config.Resolver
	logger   *zap.Logger
	service  headergen.Service
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pvg <path/to/meson.build> <path/to/template.h.in>",
		Short:         "Render a pixman version header from meson.build",
		Args:          cobra.MatchAll(cobra.ExactArgs(2), validateInputPaths),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.Version = version.Version
	cmd.SetVersionTemplate("pvg {{.Version}}\n")

	flags := bindRootFlags(cmd)
	genFlags := bindGenerateFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		runtime, cleanup, err := buildRuntime(flags)
		if err != nil {
			return err
		}
		defer cleanup()

		return runGenerate(cmd, runtime, genFlags, args[0], args[1])
	}

	cmd.AddCommand(
		newExtractCommand(flags),
		newVersionCommand(),
	)

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "pvg %s\n", version.Summary()); err != nil {
				return fmt.Errorf("writing version info: %w", err)
			}
			return nil
		},
	}
}

func bindRootFlags(cmd *cobra.Command) *rootFlagSet {
	fs := cmd.PersistentFlags()
	return &rootFlagSet{
		logLevel: bindStringFlag(fs, flagLogLevel, "", envLogLevel, logging.LevelTerse, "Log verbosity (terse, verbose or quiet)"),
	}
}

func bindGenerateFlags(cmd *cobra.Command) *generateFlagSet {
	fs := cmd.Flags()
	return &generateFlagSet{
		output: bindStringFlag(fs, flagOutput, "o", envOutput, "", "Write the rendered header to this file instead of stdout"),
		strict: bindBoolFlag(fs, flagStrict, envStrict, false, "Fail when the version triple is not valid semver"),
	}
}

func validateInputPaths(_ *cobra.Command, args []string) error {
	if err := checkBuildFile(args[0]); err != nil {
		return err
	}
	if !strings.HasSuffix(args[1], templateSuffix) {
		return fmt.Errorf("%w: %q", ErrInvalidTemplate, args[1])
	}
	return nil
}

func checkBuildFile(path string) error {
	if filepath.Base(path) != buildFileName {
		return fmt.Errorf("%w: %q", ErrInvalidBuildFile, path)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, runtime runtimeConfig, flags *generateFlagSet, buildFile, templateFile string) error {
	strict, err := flags.strict.Value(runtime.resolver)
	if err != nil {
		return err
	}
	output := flags.output.Value(runtime.resolver)

	result, err := runtime.service.Generate(headergen.Config{
		BuildFile:    buildFile,
		TemplateFile: templateFile,
		StrictSemver: strict,
	})
	if err != nil {
		return err
	}

	log := runtime.logger.With(
		zap.String("buildFile", buildFile),
		zap.String("template", templateFile),
		zap.String("version", result.Version.String()),
	)

	if !result.SemverValid {
		log.Warn("version is not strict semver; substituting verbatim", zap.Error(result.SemverErr))
	}
	if len(result.Unresolved) > 0 {
		log.Debug("unrecognized placeholders left in output", zap.Strings("tokens", result.Unresolved))
	}

	if output == "" {
		if _, err := io.WriteString(cmd.OutOrStdout(), result.Output); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		log.Debug("header rendered", zap.Int("bytes", len(result.Output)))
		return nil
	}

	// #nosec G306 -- generated headers are meant to be readable by the build
	if err := os.WriteFile(filepath.Clean(output), []byte(result.Output), 0o644); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	log.Info("header written", zap.String("output", output))
	return nil
}

func newExtractCommand(rootFlags *rootFlagSet) *cobra.Command {
	var formatFlag *stringFlag

	cmd := &cobra.Command{
		Use:   "extract <path/to/meson.build>",
		Short: "Print the project version declared in meson.build",
		Args: cobra.MatchAll(cobra.ExactArgs(1), func(_ *cobra.Command, args []string) error {
			return checkBuildFile(args[0])
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			runtime, cleanup, err := buildRuntime(rootFlags)
			if err != nil {
				return err
			}
			defer cleanup()

			format, err := formatFlag.Choice(runtime.resolver, formatText, formatJSON, formatYAML)
			if err != nil {
				return err
			}

			v, err := runtime.service.Extract(args[0])
			if err != nil {
				return err
			}
			runtime.logger.Debug("version extracted", zap.String("buildFile", args[0]), zap.String("version", v.String()))

			return writeVersion(cmd.OutOrStdout(), v, format)
		},
	}

	formatFlag = bindStringFlag(cmd.Flags(), flagFormat, "f", envFormat, formatText, "Output format (text, json or yaml)")

	return cmd
}

func writeVersion(w io.Writer, v mesonver.Version, format string) error {
	var payload []byte
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding version: %w", err)
		}
		payload = append(data, '\n')
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding version: %w", err)
		}
		payload = data
	default:
		payload = []byte(v.String() + "\n")
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("writing version: %w", err)
	}
	return nil
}

func buildRuntime(flags *rootFlagSet) (runtimeConfig, func(), error) {
	nopResolver := config.NewResolver(zap.NewNop())
	logLevel, err := flags.logLevel.Choice(nopResolver, logging.Levels()...)
	if err != nil {
		return runtimeConfig{}, nil, err
	}

	logger, err := logging.New(logLevel)
	if err != nil {
		return runtimeConfig{}, nil, fmt.Errorf("configuring logger: %w", err)
	}

	resolver := config.NewResolver(logger)
	_ = flags.logLevel.Value(resolver)

	cleanup := func() {
		_ = logger.Sync()
	}

	return runtimeConfig{
		resolver: resolver,
		logger:   logger,
		service:  headergen.NewService(headergen.OSSource{}),
	}, cleanup, nil
}
