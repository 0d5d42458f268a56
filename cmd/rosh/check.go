package main

import (
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rosh/internal/driver"
	"rosh/internal/observ"
	"rosh/internal/source"
	"rosh/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.rsh|directory>...",
	Short: "Pre-flight rosh source files",
	Long:  `Load and validate rosh source files, reporting the first violation per run as a full diagnostic`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
	checkCmd.Flags().Bool("timings", false, "show phase timing information")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	uiMode, err := readColorMode(uiValue)
	if err != nil {
		return fmt.Errorf("invalid --ui value %q (expected auto|on|off)", uiValue)
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .rsh files found")
	}

	fileSet := source.NewFileSet()
	renderOpts, err := resolveRenderOptions(cmd, fileSet)
	if err != nil {
		return err
	}

	// The TUI owns stdout while running; machine mode must keep stdout
	// as a pure JSON channel, so it never gets a TUI.
	useTUI := false
	switch uiMode {
	case colorModeOn:
		useTUI = !renderOpts.Machine
	case colorModeAuto:
		useTUI = !renderOpts.Machine && isTerminal(os.Stdout)
	}

	var events chan driver.Event
	var wg sync.WaitGroup
	if useTUI {
		events = make(chan driver.Event, len(paths)*4)
		program := tea.NewProgram(ui.NewProgressModel("pre-flight", paths, events))
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = program.Run()
		}()
	}

	// Timings go to stderr so machine mode keeps stdout as a pure JSON
	// channel.
	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	results, err := driver.Preflight(cmd.Context(), fileSet, paths, driver.PreflightOptions{
		Jobs:   jobs,
		Render: renderOpts,
		Timer:  timer,
	}, events)
	if events != nil {
		close(events)
		wg.Wait()
	}
	if err != nil {
		return err
	}
	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	for _, res := range results {
		if res.Failure == nil {
			continue
		}
		logFailure(res)
		driver.Exit(*res.Failure)
	}

	if !renderOpts.Machine {
		fmt.Fprintf(cmd.OutOrStdout(), "%d unit(s) ok\n", len(results))
	}
	return nil
}

// logFailure records a fatal diagnostic in the report log. Failure to
// persist never masks the diagnostic itself.
func logFailure(res driver.Result) {
	log, err := driver.OpenReportLog("rosh")
	if err != nil {
		return
	}
	_ = log.Append(driver.NewReportRecord(*res.Failure, res.Loc, res.Failure.Output))
}

// expandPaths flattens directory arguments into their .rsh files.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			files, err := driver.ListSourceFiles(arg)
			if err != nil {
				return nil, err
			}
			paths = append(paths, files...)
			continue
		}
		// Unreadable paths stay in the list so the pre-flight reports
		// them as proper diagnostics.
		paths = append(paths, arg)
	}
	return paths, nil
}
