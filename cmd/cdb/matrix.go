package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tinrooster/cabledb/internal/matrix"
)

func newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Distance matrix commands",
	}

	cmd.AddCommand(newMatrixShowCmd())
	cmd.AddCommand(newMatrixExportCmd())
	return cmd
}

func newMatrixShowCmd() *cobra.Command {
	var (
		configPath string
		view       string
		series     string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the distance matrix",
		Long:  "Prints the distance matrix as a table, clipped to the terminal width. Use --series to limit rows to one row-series prefix, and --view computed to see the pure computed matrix without overrides.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrixShow(cmd, configPath, view, series)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	cmd.Flags().StringVar(&view, "view", "editable", "matrix view: editable or computed")
	cmd.Flags().StringVar(&series, "series", "", "limit rows to one row-series prefix, e.g. TE")
	return cmd
}

func runMatrixShow(cmd *cobra.Command, configPath, view, series string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	session, err := loadSession(gormDB)
	if err != nil {
		return err
	}

	var snap *matrix.Snapshot
	switch view {
	case "computed":
		snap = session.Computed()
	case "editable":
		snap = session.Editable()
	default:
		return fmt.Errorf("unknown view %q: use editable or computed", view)
	}

	renderMatrix(cmd.OutOrStdout(), snap, series, terminalWidth())
	return nil
}

func newMatrixExportCmd() *cobra.Command {
	var (
		configPath string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the editable matrix to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrixExport(cmd, configPath, outPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "matrix.csv", "output CSV path")
	return cmd
}

func runMatrixExport(cmd *cobra.Command, configPath, outPath string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	session, err := loadSession(gormDB)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()
	if err := session.Editable().WriteCSV(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
	return nil
}
