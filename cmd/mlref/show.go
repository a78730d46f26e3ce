package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mlref/mlref/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <family> [section]",
	Short: "Print a family's section without starting the UI",
	Long: `Print one section of a family, or every section with --all.

Output is plain text when stdout is not a terminal, or with --plain. The
width defaults to the terminal width, then to the width config key.

Examples:
  mlref show regression
  mlref show clustering metrics --plain
  mlref show regression --all --width 72 > regression.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolP("all", "a", false, "print every section")
	showCmd.Flags().Bool("plain", false, "plain text without colour")
	showCmd.Flags().IntP("width", "w", 0, "wrap width (default terminal width)")
}

func runShow(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	opts := ui.PrintOptions{Family: args[0], ThemeName: env.Prefs.Theme}
	if len(args) > 1 {
		opts.Section = args[1]
	}
	opts.All, _ = cmd.Flags().GetBool("all")
	opts.Plain, _ = cmd.Flags().GetBool("plain")
	opts.Width, _ = cmd.Flags().GetInt("width")

	tty := isTerminal(cmd)
	if !tty {
		opts.Plain = true
	}
	if opts.Width <= 0 {
		opts.Width = env.Config.Width
		if tty {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				opts.Width = w
			}
		}
	}

	env.Logger.Info("show", "family", opts.Family, "section", opts.Section, "all", opts.All, "plain", opts.Plain)
	return ui.Print(cmd.OutOrStdout(), env.Catalog, opts)
}

// isTerminal reports whether the command writes straight to a terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
