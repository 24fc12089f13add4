package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modsentry/modsentry/internal/adapters/outbound/config"
	"github.com/modsentry/modsentry/internal/adapters/outbound/knowledge"
	"github.com/modsentry/modsentry/internal/adapters/outbound/tui"
	"github.com/modsentry/modsentry/internal/application"
	"github.com/modsentry/modsentry/internal/domain"
	"github.com/modsentry/modsentry/internal/domain/scoring"
)

func newSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Score and filter community sources",
		Long:  "Commands for scoring scraped community sources (mod pages, forum threads, guides) for reliability.",
	}
	cmd.AddCommand(newSourcesScoreCmd())
	cmd.AddCommand(newSourcesListCmd())
	return cmd
}

func newSourcesScoreCmd() *cobra.Command {
	var (
		jsonOutput    bool
		minScore      float64
		minConfidence float64
		dbPath        string
	)

	cmd := &cobra.Command{
		Use:   "score <sources.json>",
		Short: "Score scraped sources for reliability",
		Long:  "Score a JSON array of scraped source records and keep those meeting the reliability thresholds. With --db the kept sources are persisted for later runs.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadSourceRecords(args[0])
			if err != nil {
				return err
			}

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}
			cfg, err := config.New().Load(workDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if !cmd.Flags().Changed("min-score") {
				minScore = cfg.EffectiveMinScore()
			}
			if !cmd.Flags().Changed("min-confidence") {
				minConfidence = cfg.EffectiveMinConfidence()
			}

			log := newLogger()

			var store domain.KnowledgeStore
			if dbPath != "" {
				st, err := knowledge.Open(cmd.Context(), dbPath, log)
				if err != nil {
					return err
				}
				defer st.Close()
				store = st
			}

			svc := application.NewReliabilityService(scoring.FromConfig(cfg), store, log)
			kept, err := svc.FilterAndStore(cmd.Context(), records, minScore, minConfidence)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, kept)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSources(kept))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output scored sources as JSON")
	cmd.Flags().Float64Var(&minScore, "min-score", domain.DefaultMinScore, "Minimum overall score to keep a source")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", domain.DefaultMinConfidence, "Minimum confidence to keep a source")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite knowledge store to persist kept sources")

	return cmd
}

func newSourcesListCmd() *cobra.Command {
	var (
		jsonOutput bool
		minScore   float64
		dbPath     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sources stored in the knowledge store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return fmt.Errorf("no knowledge store: pass --db")
			}

			st, err := knowledge.Open(cmd.Context(), dbPath, newLogger())
			if err != nil {
				return err
			}
			defer st.Close()

			sources, err := st.ListSources(cmd.Context(), minScore)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, sources)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSources(sources))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output sources as JSON")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Only list sources scoring at least this")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite knowledge store to read")

	return cmd
}

// loadSourceRecords reads a JSON array of scraped source objects. Fields
// the scorer does not know are ignored rather than rejected.
func loadSourceRecords(path string) ([]domain.SourceRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sources file: %w", err)
	}

	var objects []map[string]any
	if err := json.Unmarshal(raw, &objects); err != nil {
		return nil, fmt.Errorf("parsing sources file: %w", err)
	}

	records := make([]domain.SourceRecord, 0, len(objects))
	for _, obj := range objects {
		records = append(records, domain.ParseSourceRecord(obj))
	}
	return records, nil
}
