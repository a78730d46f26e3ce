// Package main is the entry point for the mlref CLI.
//
// Usage:
//
//	mlref                          # browse the catalog in the terminal UI
//	mlref --family clustering      # open on a family
//	mlref show regression metrics  # print one section
//	mlref list                     # list families and sections
//	mlref log -n 20 --level warn   # tail mlref's own log
//	mlref version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mlref/mlref/internal/app"
)

// Version information, set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mlref",
	Short: "Tabbed terminal reference for machine learning model families",
	Long: `mlref is a small terminal reference for model families.

Each family (regression, clustering, ...) is a tab; inside it, sections
such as Overview, Tests and Metrics are a second row of tabs.

Keys:
  [ / ]          previous / next family
  tab, shift+tab next / previous section
  1-9            jump to section
  j/k, g/G       scroll
  T              cycle theme
  ?              help
  q              quit`,
	SilenceUsage: true,
	RunE:         runBrowse,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file (default ~/.config/mlref/config.toml)")
	rootCmd.PersistentFlags().String("prefs", "", "path to prefs file (default ~/.config/mlref/prefs.toml)")

	rootCmd.Flags().StringP("family", "f", "", "family to open on")
	rootCmd.Flags().StringP("section", "s", "", "section to open on")
	rootCmd.Flags().Bool("lock", false, "pin the family tab")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Cobra already prints the error
		os.Exit(1)
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	opts := baseOptions(cmd)
	opts.Family, _ = cmd.Flags().GetString("family")
	opts.Section, _ = cmd.Flags().GetString("section")
	opts.Lock, _ = cmd.Flags().GetBool("lock")
	return app.Run(cmd.Context(), opts)
}

// baseOptions reads the persistent flags every command shares.
func baseOptions(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	prefsPath, _ := cmd.Flags().GetString("prefs")
	return app.Options{ConfigPath: configPath, PrefsPath: prefsPath}
}

// loadEnv is the shared startup for the non-interactive commands.
func loadEnv(cmd *cobra.Command) (*app.Env, error) {
	env, err := app.Load(baseOptions(cmd))
	if err != nil {
		return nil, err
	}
	env.Logger.Debug("command", "name", cmd.Name())
	return env, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mlref %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}
