package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	apppkg "github.com/kk-code-lab/twopane/internal/app"
	"github.com/kk-code-lab/twopane/internal/config"
	"github.com/kk-code-lab/twopane/internal/logging"
	renderui "github.com/kk-code-lab/twopane/internal/ui/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

type rootOptions struct {
	showHidden bool
	themeFile  string
	logFile    string
	debug      bool
	printFrame bool
	width      int
	height     int
}

const farewell = "👋 Goodbye!"

var userHomeDirFn = os.UserHomeDir

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "twopane [DIR]",
		Short: "Dual-pane terminal file browser",
		Long: `twopane lists a directory on the left and previews the selected entry
on the right. Arrow keys move, Enter opens a directory, H toggles hidden
files and Q quits.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.showHidden, "all", "a", false, "start with hidden files shown")
	flags.StringVar(&opts.themeFile, "theme", "", "YAML file with theme colors")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.printFrame, "print", false, "print a single frame to stdout and exit")
	flags.IntVar(&opts.width, "width", 80, "frame width for --print")
	flags.IntVar(&opts.height, "height", 24, "frame height for --print")

	return cmd
}

func runBrowser(cmd *cobra.Command, args []string, opts *rootOptions) error {
	startPath, err := resolveStartPath(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.themeFile)
	if err != nil {
		return err
	}

	appOpts := apppkg.Options{
		StartPath:  startPath,
		ShowHidden: opts.showHidden,
		Palette:    cfg.Theme,
		Language:   localeFromEnv(os.Getenv),
	}

	if opts.printFrame {
		return apppkg.WriteSnapshot(cmd.OutOrStdout(), appOpts, opts.width, opts.height)
	}

	logger, closeLog, err := logging.New(opts.logFile, opts.debug)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()
	appOpts.Logger = logger

	app, err := apppkg.NewApplication(appOpts)
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	return runInteractive(cmd.OutOrStdout(), app, cfg.Theme, logger)
}

// runInteractive drives the browser until quit and prints the farewell once
// the terminal has been restored.
func runInteractive(out io.Writer, app *apppkg.Application, palette renderui.Palette, logger *logrus.Logger) (err error) {
	defer func() {
		_ = app.Close()
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("browser crashed")
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	app.Run()
	_ = app.Close()
	return writeFarewell(out, palette)
}

func writeFarewell(out io.Writer, palette renderui.Palette) error {
	color := palette.Merge(renderui.DefaultPalette()).HeaderFg
	style := lipgloss.NewRenderer(out).NewStyle().Foreground(lipgloss.Color(color))
	_, err := fmt.Fprintln(out, "\n"+style.Render(farewell))
	return err
}

// resolveStartPath returns the absolute directory to open, defaulting to the
// user's home directory.
func resolveStartPath(args []string) (string, error) {
	var path string
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	} else {
		home, err := userHomeDirFn()
		if err != nil {
			return "", fmt.Errorf("locating home directory: %w", err)
		}
		path = home
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", errors.New(abs + " is not a directory")
	}
	return abs, nil
}

// localeFromEnv picks the number-formatting language from the POSIX locale
// variables. Unknown or C locales give language.Und.
func localeFromEnv(getenv func(string) string) language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		value := getenv(key)
		if value == "" {
			continue
		}
		if i := strings.IndexAny(value, ".@"); i >= 0 {
			value = value[:i]
		}
		if value == "C" || value == "POSIX" || value == "" {
			return language.Und
		}
		tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
		if err != nil {
			return language.Und
		}
		return tag
	}
	return language.Und
}
