package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tinrooster/cabledb/internal/db"
	"github.com/tinrooster/cabledb/internal/matrix"
	"github.com/tinrooster/cabledb/internal/notify"
	"github.com/tinrooster/cabledb/internal/topology"
	"gorm.io/gorm"
)

func newRowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row",
		Short: "Custom rack-row commands",
	}

	cmd.AddCommand(newRowAddCmd())
	cmd.AddCommand(newRowListCmd())
	cmd.AddCommand(newRowRemoveCmd())
	return cmd
}

func newRowAddCmd() *cobra.Command {
	var (
		configPath string
		prefix     string
		start      int
		end        int
		ref        string
		mode       string
		offset     int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a custom row and rebuild the matrix",
		Long:  "Appends a custom branch row to the backbone, rebuilds the distance matrix, and resets manual overrides. The endpoint reference names the anchor the row is measured from (TD15, \"Main Closet Riser\", \"Roof Access Riser\", or any label for the generic fallback).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRowAdd(cmd, configPath, prefix, start, end, ref, mode, offset)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	cmd.Flags().StringVar(&prefix, "prefix", "", "row prefix, e.g. TX (required)")
	cmd.Flags().IntVar(&start, "start", 1, "first position number")
	cmd.Flags().IntVar(&end, "end", 1, "last position number")
	cmd.Flags().StringVar(&ref, "ref", "", "endpoint reference anchor")
	cmd.Flags().StringVar(&mode, "mode", string(topology.ModeEndpoint), "endpoint mode: endpoint or direct")
	cmd.Flags().IntVar(&offset, "offset", 0, "fixed offset distance for non-modeled routing")
	cmd.MarkFlagRequired("prefix")
	return cmd
}

func runRowAdd(cmd *cobra.Command, configPath, prefix string, start, end int, ref, mode string, offset int) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	session, err := loadSession(gormDB)
	if err != nil {
		return err
	}
	endpointMode, err := topology.ParseEndpointMode(mode)
	if err != nil {
		return err
	}

	row := topology.CustomRow{
		Prefix:            prefix,
		StartNum:          start,
		EndNum:            end,
		EndpointReference: ref,
		EndpointMode:      endpointMode,
		FixedOffset:       offset,
	}
	if err := session.AddRow(row); err != nil {
		return err
	}
	if err := persistTopologyChange(gormDB, session); err != nil {
		return err
	}

	notifiers, err := notify.FromConfig(cfg.Notify)
	if err != nil {
		return err
	}
	if err := notifiers.Post(notify.RowAdded(prefix, row.PositionCount())); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added row %s (%d positions); matrix rebuilt, overrides reset\n", prefix, row.PositionCount())
	return nil
}

// persistTopologyChange saves the new custom-row set and the (now empty)
// override set as the on-disk reflection of one atomic session rebuild.
func persistTopologyChange(gormDB *gorm.DB, session *matrix.Session) error {
	if err := db.ReplaceCustomRows(gormDB, session.Rows()); err != nil {
		return err
	}
	return db.ReplaceOverrides(gormDB, session.Overrides())
}

func newRowListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custom rows in creation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRowList(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	return cmd
}

func runRowList(cmd *cobra.Command, configPath string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	rows, err := db.LoadCustomRows(gormDB)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No custom rows")
		return nil
	}
	for _, r := range rows {
		ref := r.EndpointReference
		if ref == "" {
			ref = "(generic)"
		}
		fmt.Fprintf(out, "%-6s %02d-%02d  ref=%s mode=%s offset=%d\n",
			r.Prefix, r.StartNum, r.EndNum, ref, r.EndpointMode, r.FixedOffset)
	}
	return nil
}

func newRowRemoveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "remove <prefix>",
		Short: "Remove a custom row and rebuild the matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRowRemove(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to cabledb config file")
	return cmd
}

func runRowRemove(cmd *cobra.Command, configPath, prefix string) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	session, err := loadSession(gormDB)
	if err != nil {
		return err
	}
	if err := session.RemoveRow(prefix); err != nil {
		return err
	}
	if err := persistTopologyChange(gormDB, session); err != nil {
		return err
	}

	notifiers, err := notify.FromConfig(cfg.Notify)
	if err != nil {
		return err
	}
	if err := notifiers.Post(notify.RowRemoved(prefix)); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed row %s; matrix rebuilt, overrides reset\n", prefix)
	return nil
}
