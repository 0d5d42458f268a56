package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rosh/internal/diag"
)

var explainCmd = &cobra.Command{
	Use:   "explain <code>",
	Short: "Explain a rosh error code",
	Long:  `Resolve a published error code like RI0001 to its description and documentation link`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExplain,
}

func init() {
	explainCmd.Flags().Bool("list", false, "list every published error code")
}

func runExplain(cmd *cobra.Command, args []string) error {
	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return fmt.Errorf("failed to get list flag: %w", err)
	}

	if list {
		for _, code := range diag.Codes() {
			desc, _ := diag.Describe(code)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", code, desc)
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("expected an error code, e.g. rosh explain RI0001")
	}
	code := strings.ToUpper(strings.TrimSpace(args[0]))
	desc, ok := diag.Describe(code)
	if !ok {
		return fmt.Errorf("unknown error code %q", code)
	}

	bold := color.New(color.Bold)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", bold.Sprint(code), desc)
	fmt.Fprintf(cmd.OutOrStdout(), "see %s%s.html\n", diag.DocBase, code)
	return nil
}
