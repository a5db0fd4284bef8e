package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"rolint/internal/config"
	"rolint/internal/stdlib"
)

var stdCmd = &cobra.Command{
	Use:   "std",
	Short: "Inspect standard library definitions",
}

var stdShowCmd = &cobra.Command{
	Use:   "show [flags] [Class]",
	Short: "List classes, or show one class with inherited members",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStdShow,
}

func init() {
	stdShowCmd.Flags().String("std", "", "library to inspect: roblox, lua51 or a path (default: from rolint.toml)")
	stdShowCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	stdCmd.AddCommand(stdShowCmd)
}

// classOutput is the json shape of one class.
type classOutput struct {
	Name       string   `json:"name"`
	Chain      []string `json:"chain"`
	Properties []string `json:"properties"`
	Events     []string `json:"events"`
}

func runStdShow(cmd *cobra.Command, args []string) error {
	stdName, err := cmd.Flags().GetString("std")
	if err != nil {
		return fmt.Errorf("failed to get std flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	lib, err := resolveStdFlag(stdName)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		names := lib.ClassNames()
		if format == "json" {
			return writeJSON(out, names)
		}
		fmt.Fprintf(out, "%s: %d classes\n", lib.Name, len(names))
		for _, name := range names {
			fmt.Fprintln(out, "  "+name)
		}
		return nil
	}

	view, err := describeClass(lib, args[0])
	if err != nil {
		return err
	}
	if format == "json" {
		return writeJSON(out, view)
	}
	renderClass(out, view)
	return nil
}

// resolveStdFlag loads the library named by --std, or the configured one.
// auto has no single library, so it shows roblox.
func resolveStdFlag(name string) (*stdlib.Library, error) {
	dir := "."
	if name == "" {
		cfg, err := config.Discover(".")
		if err != nil {
			return nil, err
		}
		name, dir = cfg.Std, cfg.Dir
	}
	if name == config.StdAuto {
		name = "roblox"
	}
	return stdlib.Resolve(name, dir)
}

func describeClass(lib *stdlib.Library, name string) (classOutput, error) {
	chain := lib.Ancestors(name)
	if len(chain) == 0 {
		return classOutput{}, fmt.Errorf("%s: unknown class %q", lib.Name, name)
	}
	props, events := lib.Members(name)
	view := classOutput{Name: name, Properties: props, Events: events}
	for _, c := range chain {
		view.Chain = append(view.Chain, c.Name)
	}
	if view.Properties == nil {
		view.Properties = []string{}
	}
	if view.Events == nil {
		view.Events = []string{}
	}
	return view, nil
}

func renderClass(w io.Writer, view classOutput) {
	fmt.Fprintln(w, strings.Join(view.Chain, " < "))
	fmt.Fprintf(w, "properties (%d):\n", len(view.Properties))
	for _, p := range view.Properties {
		fmt.Fprintln(w, "  "+p)
	}
	fmt.Fprintf(w, "events (%d):\n", len(view.Events))
	for _, e := range view.Events {
		fmt.Fprintln(w, "  "+e)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
