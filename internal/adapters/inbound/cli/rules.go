package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modsentry/modsentry/internal/adapters/outbound/config"
	"github.com/modsentry/modsentry/internal/adapters/outbound/rules"
)

const defaultRulesDir = ".modsentry/rules"

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage conflict rule sets",
	}
	cmd.AddCommand(newRulesUpdateCmd())
	cmd.AddCommand(newRulesValidateCmd())
	return cmd
}

func newRulesUpdateCmd() *cobra.Command {
	var (
		repoURL string
		dir     string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Sync the community rules repository",
		Long:  "Clone or pull the community conflict rules repository into a local directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}
			cfg, err := config.New().Load(workDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if repoURL == "" {
				repoURL = cfg.RulesRepo
			}
			if repoURL == "" {
				return fmt.Errorf("no rules repository: pass --repo or set rules_repo in .modsentry.yaml")
			}

			ref, err := rules.NewSyncer(repoURL, dir, newLogger()).Sync(cmd.Context())
			if err != nil {
				return fmt.Errorf("syncing rules: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "rules up to date at %s (%s)\n", dir, ref)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoURL, "repo", "", "Rules repository URL (overrides rules_repo from .modsentry.yaml)")
	cmd.Flags().StringVar(&dir, "dir", defaultRulesDir, "Local directory for the rules checkout")

	return cmd
}

func newRulesValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <rules.yaml>",
		Short: "Validate a rules file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := rules.NewLoader().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"ok: version %s, %d incompatibilities, %d requirements, %d order rules (sha256 %.12s)\n",
				rs.Version, len(rs.Incompatible), len(rs.Requirements), len(rs.LoadOrder), rs.SHA256)
			return nil
		},
	}
	return cmd
}
