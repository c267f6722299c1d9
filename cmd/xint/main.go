package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"xint/internal/debug"
	"xint/internal/version"
	"xint/pkg/app"
	"xint/pkg/config"
	"xint/pkg/gui/icons"
	"xint/pkg/gui/theme"
	"xint/pkg/policy"
	"xint/pkg/runner"
)

// launchOptions holds the command-line flags. They override tui.yaml and
// the XINT_* environment.
type launchOptions struct {
	policy      policy.Mode
	theme       string
	themeFile   string
	noHero      bool
	watchTheme  bool
	debug       bool
	showVersion bool
}

func bindDashboardFlags(flags *pflag.FlagSet, opts *launchOptions) {
	flags.StringVar(&opts.theme, "theme", "", "Theme preset ("+strings.Join(theme.Names(), ", ")+")")
	flags.StringVar(&opts.themeFile, "theme-file", "", "YAML or JSON file overriding theme tokens")
	flags.BoolVar(&opts.noHero, "no-hero", false, "Hide the animated hero line")
	flags.BoolVar(&opts.watchTheme, "watch-theme", false, "Reload the theme file when it changes")
	flags.BoolVar(&opts.debug, "debug", false, "Write a debug log to the xint home directory")
}

// applyFlags layers explicitly set flags over the loaded configuration.
func applyFlags(flags *pflag.FlagSet, opts launchOptions, cfg *config.Config) {
	if flags.Changed("policy") {
		cfg.Policy = opts.policy.String()
	}
	if flags.Changed("theme") {
		cfg.Theme = strings.ToLower(strings.TrimSpace(opts.theme))
	}
	if flags.Changed("theme-file") {
		cfg.ThemeFile = strings.TrimSpace(opts.themeFile)
	}
	if flags.Changed("no-hero") {
		cfg.Hero = !opts.noHero
	}
	if flags.Changed("watch-theme") {
		cfg.WatchTheme = opts.watchTheme
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
}

func launch(cmd *cobra.Command, opts launchOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd.Flags(), opts, &cfg)

	logger := debug.Init(cfg.Debug)
	defer logger.Close()
	applyIcons(cfg)

	mode, err := policy.Parse(cfg.Policy)
	if err != nil {
		return err
	}
	r, err := runner.New(cfg.Executable, mode)
	if err != nil {
		return err
	}

	th, err := theme.Resolve(cfg.Theme, cfg.ThemeFile)
	if err != nil {
		debug.Log("theme override %s ignored: %v", cfg.ThemeFile, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appOpts := app.Options{
		Runner: r,
		Theme:  th,
		Hero:   cfg.Hero,
	}
	if cfg.WatchTheme && cfg.ThemeFile != "" {
		watcher := theme.NewWatcher(cfg.Theme, cfg.ThemeFile)
		if err := watcher.Start(ctx); err != nil {
			debug.Log("theme watcher not started: %v", err)
		} else {
			appOpts.ThemeEvents = watcher.Events()
		}
	}

	debug.Log("launching dashboard: policy=%s theme=%s hero=%v executable=%s", mode, th.Name, cfg.Hero, r.Executable)
	return app.Run(ctx, appOpts)
}

// applyIcons pins Nerd Font usage when the config says so.
func applyIcons(cfg config.Config) {
	if cfg.NerdFonts != nil {
		icons.SetNerdFonts(*cfg.NerdFonts)
	}
}

func newRootCmd() *cobra.Command {
	opts := &launchOptions{}

	rootCmd := &cobra.Command{
		Use:   "xint",
		Short: "Interactive dashboard for xint",
		Long: `xint opens a full-screen dashboard for running xint commands.

Pick an action with the arrow keys and Enter, or type its number or alias.
Output streams into the Output tab while the command runs.

When stdin or stdout is not a terminal a plain numbered menu is used instead.

Actions run as subcommands of the xint backend. Point XINT_EXECUTABLE, or
executable: in ~/.xint/tui.yaml, at the xint CLI that implements search,
trends, profile, thread and article. Without it the dashboard re-invokes its
own binary, which only answers --help.

Examples:
  xint                      # Open the dashboard
  xint tui --theme ocean    # Open it with the ocean theme
  xint --policy engagement  # Forward the engagement policy to commands`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return nil
			}
			return launch(cmd, *opts)
		},
	}
	rootCmd.PersistentFlags().Var(&opts.policy, "policy", "Policy mode forwarded to commands (read_only, engagement)")
	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")
	bindDashboardFlags(rootCmd.Flags(), opts)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launch(cmd, *opts)
		},
	}
	bindDashboardFlags(tuiCmd.Flags(), opts)
	rootCmd.AddCommand(tuiCmd)

	return rootCmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
