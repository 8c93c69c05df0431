// File: cmd/runs.go
package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/WebVOWL/horned-owl-serializer/internal/config"
	"github.com/WebVOWL/horned-owl-serializer/internal/export"
)

func newRunsCmd(provider storeProvider) *cobra.Command {
	var limit int

	runsCmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List stored extraction runs, or print one stored graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			runID := ""
			if len(args) == 1 {
				runID = args[0]
			}
			return runRuns(ctx, cfg, provider, runID, limit, cmd.OutOrStdout())
		},
	}
	runsCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to list.")
	return runsCmd
}

func runRuns(ctx context.Context, cfg config.Interface, provider storeProvider, runID string, limit int, out io.Writer) error {
	var id uuid.UUID
	if runID != "" {
		parsed, err := uuid.Parse(runID)
		if err != nil {
			return fmt.Errorf("invalid run ID %q: %w", runID, err)
		}
		id = parsed
	}

	repo, cleanup, err := provider.Create(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	if runID != "" {
		run, err := repo.LoadRun(ctx, id)
		if err != nil {
			return err
		}
		if err := export.Write(out, run.Graph, export.WithIndent(cfg.Output().Indent)); err != nil {
			return err
		}
		_, err = io.WriteString(out, "\n")
		return err
	}

	runs, err := repo.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tSOURCE\tONTOLOGY")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.CreatedAt.Format(time.RFC3339), r.Source, r.Ontology)
	}
	return tw.Flush()
}
