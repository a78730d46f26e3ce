package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlref/mlref/internal/content"
)

var listCmd = &cobra.Command{
	Use:   "list [family]",
	Short: "List families, or one family's metrics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		_, err = fmt.Fprintln(out, content.CatalogTable(env.Catalog).Render())
		return err
	}

	f, err := env.Catalog.Family(args[0])
	if err != nil {
		return err
	}
	var metrics []content.Metric
	for _, s := range f.Sections {
		metrics = append(metrics, s.Metrics...)
	}
	if len(metrics) == 0 {
		_, err = fmt.Fprintf(out, "%s has no metrics\n", f.Title)
		return err
	}
	tw := content.MetricsTable(metrics)
	tw.SetTitle(f.Title)
	_, err = fmt.Fprintln(out, tw.Render())
	return err
}
