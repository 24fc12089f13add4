package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modsentry/modsentry/internal/adapters/outbound/config"
	"github.com/modsentry/modsentry/internal/adapters/outbound/history"
	"github.com/modsentry/modsentry/internal/adapters/outbound/modlist"
	"github.com/modsentry/modsentry/internal/adapters/outbound/rules"
	"github.com/modsentry/modsentry/internal/adapters/outbound/tui"
	"github.com/modsentry/modsentry/internal/application"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		jsonOutput  bool
		ciMode      bool
		maxCritical int
		rulesPath   string
	)

	cmd := &cobra.Command{
		Use:   "analyze <modlist>",
		Short: "Analyze a mod list for conflicts",
		Long:  "Check a mod list (plugins.txt, loadorder.txt or a JSON manifest) against a conflict rule set and print a consolidated report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}

			svc := application.NewAnalyzeService(
				modlist.New(),
				rules.NewLoader(),
				config.New(),
				history.New(),
				newLogger(),
			)

			res, err := svc.AnalyzeModList(cmd.Context(), args[0], rulesPath, workDir)
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, res); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(res))
			}

			if ciMode && res.Summary.CriticalCount > maxCritical {
				return fmt.Errorf("%d critical issues exceed the allowed %d", res.Summary.CriticalCount, maxCritical)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if critical issues exceed --max-critical")
	cmd.Flags().IntVar(&maxCritical, "max-critical", 0, "Maximum critical issues allowed in CI mode")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Rules file (overrides rules_path from .modsentry.yaml)")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
