package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hodevin/decaf/internal/diagfmt"
	"github.com/hodevin/decaf/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.decaf",
	Short: "Parse a Decaf source file and print its AST",
	Long:  `Parse runs the lexer and parser over a single Decaf source file and prints the resulting syntax tree.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: useColor})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.Program)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Program)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
