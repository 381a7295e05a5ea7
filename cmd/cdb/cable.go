package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tinrooster/cabledb/internal/cable"
)

func newCableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cable",
		Short: "Cable record commands",
	}

	cmd.AddCommand(newCableImportCmd())
	cmd.AddCommand(newCableExportCmd())
	cmd.AddCommand(newCableFillCmd())
	return cmd
}

func newCableImportCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import cable records from CSV",
		Long:  "Imports cable records, upserting by cable number. Columns: NUMBER, DWG, ORIGIN, DEST, ALT DWG, WIRE TYPE, LENGTH, NOTE, PROJECT ID.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCableImport(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	return cmd
}

func runCableImport(cmd *cobra.Command, configPath, path string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	n, err := cable.ImportCSV(gormDB, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cable records\n", n)
	return nil
}

func newCableExportCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Export all cable records to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCableExport(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	return cmd
}

func runCableExport(cmd *cobra.Command, configPath, path string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := cable.ExportCSV(gormDB, f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func newCableFillCmd() *cobra.Command {
	var (
		configPath string
		from       int
		to         int
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill missing cable lengths from the distance matrix",
		Long:  "Looks up the origin and destination racks of every unmeasured cable in the given number range and fills the length from the editable matrix. Cables whose racks cannot be resolved are left untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCableFill(cmd, configPath, from, to)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	cmd.Flags().IntVar(&from, "from", 0, "first cable number of the range")
	cmd.Flags().IntVar(&to, "to", 0, "last cable number of the range")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}

func runCableFill(cmd *cobra.Command, configPath string, from, to int) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	session, err := loadSession(gormDB)
	if err != nil {
		return err
	}

	result, err := cable.FillLengths(gormDB, session.Editable(), from, to)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Filled %d cable lengths\n", result.Updated)
	for _, num := range result.Skipped {
		fmt.Fprintf(out, "cable %d: n/a (rack not in matrix)\n", num)
	}
	return nil
}
