package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"

	"github.com/ccos89/relia/internal/config"
	"github.com/ccos89/relia/internal/schema"
	"github.com/ccos89/relia/internal/theme"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

// Build vars.
var (
	//nolint: gochecknoglobals
	Version   = ""
	CommitSHA = ""
)

func buildVersion() {
	if len(CommitSHA) >= 7 { //nolint:mnd
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			Version = info.Main.Version
		} else {
			Version = "unknown (built from source)"
		}
	}
	rootCmd.Version = Version
}

var (
	opts    = options{}
	rootCmd = &cobra.Command{
		Use:           "relia",
		Short:         "Inspect and validate your elia models and themes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Verbose {
				log.SetLevel(log.DebugLevel)
			}
			switch {
			case opts.Settings:
				return editSettings(config.SettingsPath())
			case opts.ResetSettings:
				return resetSettings(config.SettingsPath())
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			switch {
			case opts.ListModels:
				return listModels(cfg)
			case opts.ListThemes:
				return listThemes(cfg)
			}
			return printSummary(cfg)
		},
	}
)

func init() {
	buildVersion()
	initFlags()
	rootCmd.SetUsageFunc(usageFunc)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newFlagParseError(err, cmd.Flags())
	})
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.AddCommand(&cobra.Command{
		Use:                   "man",
		Short:                 "Generates manpages",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Hidden:                true,
		Args:                  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint:wrapcheck
				return err
			}
			manPage = manPage.WithSection("Files", "Settings are read from "+config.SettingsPath()+
				" and user themes from "+config.DefaultThemeDirectory()+".")
			_, err = fmt.Fprint(os.Stdout, manPage.Build(roff.NewDocument()))
			//nolint:wrapcheck
			return err
		},
	})
}

func main() {
	log.SetReportTimestamp(false)
	if !isCompletionCmd(os.Args) && !isManCmd(os.Args) {
		if err := loadDotEnv(filepath.Join(config.ConfigDir(), ".env")); err != nil {
			handleError(reliaError{err, "Could not load your .env file."})
			os.Exit(1)
		}
	}
	if err := rootCmd.Execute(); err != nil {
		handleError(err)
		os.Exit(1)
	}
}

// loadDotEnv loads path into the environment, ignoring a missing file.
// Variables already set are kept.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	//nolint:wrapcheck
	return err
}

func loadConfig(cmd *cobra.Command) (config.LaunchConfig, error) {
	var extra []config.Option
	if opts.Model != "" {
		extra = append(extra, config.WithDefaultModel(opts.Model))
	}
	if opts.Theme != "" {
		extra = append(extra, config.WithTheme(opts.Theme))
	}
	if opts.ThemesDir != "" {
		extra = append(extra, config.WithThemeDirectory(opts.ThemesDir))
	}
	if cmd.Flags().Changed("system-prompt") {
		prompt, err := loadMsg(opts.SystemPrompt)
		if err != nil {
			return config.LaunchConfig{}, reliaError{err, "Could not read the system prompt."}
		}
		extra = append(extra, config.WithSystemPrompt(prompt))
	}

	cfg, err := config.Current(extra...)
	if errors.Is(err, schema.ErrInvalid) {
		return cfg, reliaError{err, "Invalid configuration."}
	}
	if err != nil {
		return cfg, reliaError{err, "Could not load your settings."}
	}
	log.Debug("loaded configuration", "settings", config.SettingsPath(), "models", len(cfg.AllModels()))
	return cfg, nil
}

// activeTheme resolves the configured theme against the builtin and user
// themes.
func activeTheme(cfg config.LaunchConfig) (theme.Theme, map[string]theme.Theme, error) {
	themes, err := theme.Available(cfg.ThemeDirectory())
	if err != nil {
		return theme.Theme{}, nil, reliaError{err, "Could not load your themes."}
	}
	t, err := theme.Select(themes, cfg.Theme())
	if err != nil {
		return theme.Theme{}, nil, reliaError{err, fmt.Sprintf("Unknown theme %s.", stderrStyles().InlineCode.Render(cfg.Theme()))}
	}
	return t, themes, nil
}

var (
	completionShells = []string{"bash", "fish", "zsh", "powershell"}
	helpArgs         = []string{"-h", "--help"}
)

// isCompletionCmd reports whether args run cobra's shell completion.
func isCompletionCmd(args []string) bool {
	if len(args) < 2 { //nolint:mnd
		return false
	}
	switch cmd, rest := args[1], args[2:]; {
	case cmd == "__complete":
		return true
	case cmd != "completion":
		return false
	case len(rest) == 1:
		return slices.Contains(completionShells, rest[0]) || rest[0] == "help" || slices.Contains(helpArgs, rest[0])
	case len(rest) == 2: //nolint:mnd
		return slices.Contains(helpArgs, rest[1])
	default:
		return false
	}
}

// isManCmd reports whether args ask for the man page or its help.
func isManCmd(args []string) bool {
	if len(args) < 2 || args[1] != "man" { //nolint:mnd
		return false
	}
	rest := args[2:]
	return len(rest) == 0 || (len(rest) == 1 && slices.Contains(helpArgs, rest[0]))
}
