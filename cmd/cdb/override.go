package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tinrooster/cabledb/internal/db"
)

func newOverrideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Editable-matrix override commands",
	}

	cmd.AddCommand(newOverrideSetCmd())
	cmd.AddCommand(newOverrideRescaleCmd())
	cmd.AddCommand(newOverrideClearCmd())
	return cmd
}

func newOverrideSetCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "set <row> <col> <value>",
		Short: "Set one editable matrix cell",
		Long:  "Writes a single cell of the editable matrix. The mirror cell is untouched, so the two directions may diverge. Non-numeric values are recorded as 0.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverrideSet(cmd, configPath, args[0], args[1], args[2])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	return cmd
}

func runOverrideSet(cmd *cobra.Command, configPath, row, col, rawValue string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	session, err := loadSession(gormDB)
	if err != nil {
		return err
	}

	value := coerceCellValue(rawValue)
	if err := session.SetCell(row, col, value); err != nil {
		return err
	}
	if err := db.ReplaceOverrides(gormDB, session.Overrides()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s/%s = %d\n", row, col, value)
	return nil
}

// coerceCellValue applies the input-boundary rule: non-numeric cell input
// becomes 0.
func coerceCellValue(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

func newOverrideRescaleCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rescale <prefix> <percent>",
		Short: "Rescale every cell of a row series by a percentage",
		Long:  "Multiplies every editable cell in the rows of the given series by percent/100, rounded to nearest. The percentage is clamped to [0, 200].",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverrideRescale(cmd, configPath, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	return cmd
}

func runOverrideRescale(cmd *cobra.Command, configPath, prefix, rawPercent string) error {
	percent, err := strconv.ParseFloat(rawPercent, 64)
	if err != nil {
		return fmt.Errorf("percent %q is not a number", rawPercent)
	}

	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	session, err := loadSession(gormDB)
	if err != nil {
		return err
	}

	touched := session.RescaleSeries(prefix, percent)
	if touched == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No rows touched")
		return nil
	}
	if err := db.ReplaceOverrides(gormDB, session.Overrides()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rescaled %d matrix rows in series %s\n", touched, prefix)
	return nil
}

func newOverrideClearCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard all overrides, restoring the computed matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverrideClear(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	return cmd
}

func runOverrideClear(cmd *cobra.Command, configPath string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	if err := db.ReplaceOverrides(gormDB, nil); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Overrides cleared")
	return nil
}
