package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hodevin/decaf/internal/diagfmt"
	"github.com/hodevin/decaf/internal/driver"
	"github.com/hodevin/decaf/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [flags] file.decaf",
	Short: "Interactively explore a file's decorated scope tree",
	Long: `Browse runs the full front end over a single Decaf source file and opens
an interactive view of the resulting scope tree, letting you scroll through
nested scopes and their locally-bound names.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	result, err := driver.Diagnose(args[0], driver.DiagnoseStageAll, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: useColor})
	}

	if result.Root == nil {
		return fmt.Errorf("no scope tree: analysis did not run to completion")
	}

	model := ui.NewBrowseModel(args[0], result.Root)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err = program.Run()
	return err
}
