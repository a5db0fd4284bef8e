package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rolint/internal/config"
	"rolint/internal/driver"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List lint rules and whether the current configuration enables them",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	rulesCmd.Flags().String("config", "", "path to rolint.toml (default: discovered from the working directory)")
}

type ruleOutput struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

func runRules(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}

	reg := driver.DefaultRegistry()
	if err := cfg.Validate(reg); err != nil {
		return err
	}
	enabled, err := cfg.BuildRules(reg)
	if err != nil {
		return err
	}
	active := make(map[string]string, len(enabled))
	for _, r := range enabled {
		active[r.Name()] = r.Severity().String()
	}

	var rows []ruleOutput
	for _, r := range reg.All() {
		row := ruleOutput{
			Name:        r.Name(),
			Type:        r.Type().String(),
			Severity:    r.Severity().String(),
			Description: r.Description(),
		}
		if sev, ok := active[r.Name()]; ok {
			row.Enabled, row.Severity = true, sev
		}
		rows = append(rows, row)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return writeJSON(out, rows)
	case "pretty":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RULE\tTYPE\tSEVERITY\tENABLED\tDESCRIPTION")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%v\t%s\n", r.Name, r.Type, r.Severity, r.Enabled, r.Description)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
