package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDistanceCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "distance <position> <position>",
		Short: "Compute the cable-run distance between two rack positions",
		Long:  "Computes the cable-run length between two positions, e.g. `cdb distance TD05 TK01`. Custom rows from the database are included in the topology.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDistance(cmd, configPath, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	return cmd
}

func runDistance(cmd *cobra.Command, configPath, a, b string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	session, err := loadSession(gormDB)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	d, err := session.Distance(a, b)
	if err != nil {
		// An invalid query reports n/a rather than a numeric stand-in.
		fmt.Fprintf(out, "%s -> %s: n/a (%v)\n", a, b, err)
		return nil
	}
	fmt.Fprintf(out, "%s -> %s: %d\n", a, b, d)
	return nil
}
