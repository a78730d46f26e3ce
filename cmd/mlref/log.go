package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlref/mlref/internal/applog"
	"github.com/mlref/mlref/internal/logtail"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print the end of mlref's log file",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().IntP("lines", "n", 50, "number of lines (0 for all)")
	logCmd.Flags().String("level", "debug", "minimum level: debug, info, warn, error")
}

func runLog(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	path := env.Config.LogFile
	// Close first so this command's own startup record is on disk.
	if err := env.Close(); err != nil {
		return fmt.Errorf("close log: %w", err)
	}

	lines, _ := cmd.Flags().GetInt("lines")
	levelName, _ := cmd.Flags().GetString("level")
	minLevel, err := applog.ParseLevel(levelName)
	if err != nil {
		return err
	}

	out, err := logtail.Tail(path, logtail.Options{MaxLines: lines, MinLevel: minLevel})
	if err != nil {
		return err
	}
	for _, line := range out {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
