package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rosh/internal/driver"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently reported diagnostics",
	Long:  `List the fatal diagnostics recorded by previous rosh runs on this machine`,
	Args:  cobra.NoArgs,
	RunE:  runRecent,
}

func runRecent(cmd *cobra.Command, args []string) error {
	log, err := driver.OpenReportLog("rosh")
	if err != nil {
		return fmt.Errorf("failed to open report log: %w", err)
	}
	records, err := log.Recent()
	if err != nil {
		return fmt.Errorf("failed to read report log: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no recorded diagnostics")
		return nil
	}
	for _, rec := range records {
		where := rec.Path
		if where == "" {
			where = "<unknown>"
		}
		if rec.Line > 0 {
			where = fmt.Sprintf("%s:%d:%d", where, rec.Line, rec.Col)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s] %s\n", rec.When.Format("2006-01-02 15:04:05"), rec.Code, where)
	}
	return nil
}
