package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tinrooster/cabledb/internal/config"
	"github.com/tinrooster/cabledb/internal/db"
	"github.com/tinrooster/cabledb/internal/matrix"
	"gorm.io/gorm"
)

const defaultConfigPath = "cabledb.yaml"

// connectFromConfig loads the config file and opens the database.
func connectFromConfig(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gormDB, nil
}

// loadSession builds the matrix session from the persisted custom rows and
// replays the persisted overrides onto the editable matrix.
func loadSession(gormDB *gorm.DB) (*matrix.Session, error) {
	rows, err := db.LoadCustomRows(gormDB)
	if err != nil {
		return nil, err
	}
	session, err := matrix.NewSession(rows)
	if err != nil {
		return nil, err
	}
	overrides, err := db.LoadOverrides(gormDB)
	if err != nil {
		return nil, err
	}
	session.ApplyOverrides(overrides)
	return session, nil
}

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}

	cmd.AddCommand(newDBInitCmd())
	cmd.AddCommand(newDBResetCmd())
	return cmd
}

func newDBInitCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the cabledb database",
		Long:  "Creates or migrates the custom-row, override, and cable tables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBInit(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	return cmd
}

func runDBInit(cmd *cobra.Command, configPath string) error {
	out := cmd.OutOrStdout()

	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables (%s)\n", len(db.AllModels()), cfg.Database.Driver)
	return nil
}

func newDBResetCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate all tables",
		Long:  "Destroys all custom rows, overrides, and cable records, then recreates empty tables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBReset(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	return cmd
}

func runDBReset(cmd *cobra.Command, configPath string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	if err := db.Reset(gormDB); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Database reset")
	return nil
}
