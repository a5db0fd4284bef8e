package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rolint/internal/diagfmt"
	"rolint/internal/dialect"
	"rolint/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.lua",
	Short: "Parse a Lua/Luau source file and output its AST",
	Long: `Parse builds the syntax tree of a Lua or Luau source file and prints it.
With --dialect the evidence collected while parsing is printed as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("dialect", false, "print dialect evidence and classification")
}

func runParse(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	showDialect, err := cmd.Flags().GetBool("dialect")
	if err != nil {
		return fmt.Errorf("failed to get dialect flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return err
		}
		mode, err := readColorMode(colorFlag)
		if err != nil {
			return err
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   useColorFor(mode, os.Stderr),
			Context: 2,
		})
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		if err := diagfmt.FormatASTPretty(out, result.Builder, result.FileID, result.FileSet); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatASTJSON(out, result.Builder, result.FileID); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if showDialect {
		printDialect(cmd.ErrOrStderr(), result)
	}
	return nil
}

func printDialect(w io.Writer, result *driver.ParseResult) {
	fmt.Fprintln(w, "== dialect ==")
	for _, h := range result.Evidence.Hints() {
		start, _ := result.FileSet.Resolve(h.Span)
		fmt.Fprintf(w, "  %d:%d %-8s +%d %s\n", start.Line, start.Col, h.Dialect, h.Score, h.Reason)
	}
	c := result.Dialect
	if c.Kind == dialect.Unknown {
		fmt.Fprintf(w, "  result: unknown (%d signals)\n", c.ObservedSignals)
		return
	}
	fmt.Fprintf(w, "  result: %s score=%d/%d confidence=%.2f", c.Kind, c.Score, c.TotalScore, c.Confidence)
	if c.RunnerUp != dialect.Unknown {
		fmt.Fprintf(w, " runner-up=%s(%d)", c.RunnerUp, c.RunnerUpScore)
	}
	fmt.Fprintln(w)
}
