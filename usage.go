package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

var help = map[string]string{
	"model":          "Default model, by id or name.",
	"theme":          "Active theme.",
	"system-prompt":  "System prompt, as text or a file:// path.",
	"themes-dir":     "Directory to load user themes from.",
	"list-models":    "List the configured and builtin models.",
	"list-themes":    "List the builtin and user themes.",
	"settings":       "Open settings in your $EDITOR.",
	"reset-settings": "Backup your old settings file and reset everything to the defaults.",
	"verbose":        "Print debug logs.",
	"help":           "Show help and exit.",
	"version":        "Show version and exit.",
}

// options holds the command line flags.
type options struct {
	Model         string
	Theme         string
	SystemPrompt  string
	ThemesDir     string
	ListModels    bool
	ListThemes    bool
	Settings      bool
	ResetSettings bool
	Verbose       bool
}

func initFlags() {
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.Model, "model", "m", "", help["model"])
	flags.StringVarP(&opts.Theme, "theme", "t", "", help["theme"])
	flags.StringVarP(&opts.SystemPrompt, "system-prompt", "s", "", help["system-prompt"])
	flags.StringVar(&opts.ThemesDir, "themes-dir", "", help["themes-dir"])
	flags.BoolVarP(&opts.ListModels, "list-models", "M", false, help["list-models"])
	flags.BoolVarP(&opts.ListThemes, "list-themes", "T", false, help["list-themes"])
	flags.BoolVar(&opts.Settings, "settings", false, help["settings"])
	flags.BoolVar(&opts.ResetSettings, "reset-settings", false, help["reset-settings"])
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, help["verbose"])
	flags.BoolP("help", "h", false, help["help"])
	flags.Bool("version", false, help["version"])
	flags.SortFlags = false

	rootCmd.MarkFlagsMutuallyExclusive(
		"settings",
		"reset-settings",
		"list-models",
		"list-themes",
	)
}

func useLine() string {
	appName := filepath.Base(os.Args[0])

	if stdoutRenderer().ColorProfile() == termenv.TrueColor {
		appName = makeGradientText(stdoutStyles().AppName, appName)
	}

	return fmt.Sprintf(
		"%s %s",
		appName,
		stdoutStyles().CliArgs.Render("[OPTIONS]"),
	)
}

func usageFunc(cmd *cobra.Command) error {
	fmt.Printf("Models and themes for elia, checked before you chat.\n\n")
	fmt.Printf(
		"Usage:\n  %s\n\n",
		useLine(),
	)
	fmt.Println("Options:")
	cmd.Flags().VisitAll(func(f *flag.Flag) {
		if f.Hidden {
			return
		}
		if f.Shorthand == "" {
			fmt.Printf(
				"  %-44s %s\n",
				stdoutStyles().Flag.Render("--"+f.Name),
				stdoutStyles().FlagDesc.Render(f.Usage),
			)
		} else {
			fmt.Printf(
				"  %s%s %-40s %s\n",
				stdoutStyles().Flag.Render("-"+f.Shorthand),
				stdoutStyles().FlagComma,
				stdoutStyles().Flag.Render("--"+f.Name),
				stdoutStyles().FlagDesc.Render(f.Usage),
			)
		}
	})
	if cmd.HasExample() {
		fmt.Printf(
			"\nExample:\n  %s\n",
			cmd.Example,
		)
	} else {
		desc, example := randomExample()
		fmt.Printf(
			"\nExample:\n  %s\n  %s\n",
			stdoutStyles().Comment.Render("# "+desc),
			cheapHighlighting(stdoutStyles(), example),
		)
	}

	return nil
}
