// File: cmd/extract.go
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/WebVOWL/horned-owl-serializer/internal/config"
	"github.com/WebVOWL/horned-owl-serializer/internal/export"
	"github.com/WebVOWL/horned-owl-serializer/internal/observability"
	"github.com/WebVOWL/horned-owl-serializer/internal/pipeline"
	"github.com/WebVOWL/horned-owl-serializer/internal/store"
	"github.com/WebVOWL/horned-owl-serializer/internal/vowl"
)

func newExtractCmd(provider storeProvider) *cobra.Command {
	extractCmd := &cobra.Command{
		Use:   "extract <file>...",
		Short: "Extract VOWL graphs from ontology files",
		Long: `Parses each ontology, extracts its VOWL node and edge graph and writes it as JSON.

With a single input, --output names the output file. With several inputs it names a
directory that receives one <name>.json per input. Without --output the graphs are
written to stdout, one per line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			applyExtractFlagOverrides(cmd, cfg)
			return runExtract(ctx, logger, cfg, args, provider, cmd.OutOrStdout())
		},
	}

	extractCmd.Flags().StringP("output", "o", "", "Output file, or directory for several inputs. (Overrides config/env)")
	extractCmd.Flags().Bool("compress", false, "Brotli-compress the output. (Overrides config/env)")
	extractCmd.Flags().Bool("indent", false, "Pretty-print the JSON. (Overrides config/env)")
	extractCmd.Flags().Bool("persist", false, "Store each run in PostgreSQL. (Overrides config/env)")
	extractCmd.Flags().Bool("sort", false, "Sort components canonically before extraction. (Overrides config/env)")
	extractCmd.Flags().Int("max-depth", 0, "Maximum nesting depth; 0 means unlimited. (Overrides config/env)")
	extractCmd.Flags().IntP("workers", "j", 0, "Files processed concurrently; 0 means one per CPU. (Overrides config/env)")
	return extractCmd
}

// applyExtractFlagOverrides copies explicitly set flags into cfg.
func applyExtractFlagOverrides(cmd *cobra.Command, cfg config.Interface) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		v, _ := flags.GetString("output")
		cfg.SetOutputPath(v)
	}
	if flags.Changed("compress") {
		v, _ := flags.GetBool("compress")
		cfg.SetOutputCompress(v)
	}
	if flags.Changed("indent") {
		v, _ := flags.GetBool("indent")
		cfg.SetOutputIndent(v)
	}
	if flags.Changed("persist") {
		v, _ := flags.GetBool("persist")
		cfg.SetDatabasePersist(v)
	}
	if flags.Changed("sort") {
		v, _ := flags.GetBool("sort")
		cfg.SetExtractCanonicalOrder(v)
	}
	if flags.Changed("max-depth") {
		v, _ := flags.GetInt("max-depth")
		if v < 0 {
			observability.GetLogger().Warn("Ignoring negative --max-depth", zap.Int("value", v))
		} else {
			cfg.SetExtractMaxDepth(v)
		}
	}
	if flags.Changed("workers") {
		v, _ := flags.GetInt("workers")
		cfg.SetPipelineWorkers(v)
	}
}

// extractOptions maps the extract section onto vowl options.
func extractOptions(cfg config.ExtractConfig, logger *zap.Logger) []vowl.Opt {
	opts := []vowl.Opt{
		vowl.WithLogger(logger),
		vowl.WithMaxDepth(cfg.MaxDepth),
		vowl.WithCanonicalOrder(cfg.CanonicalOrder),
	}
	if cfg.IndexLimit > 0 {
		opts = append(opts, vowl.WithIndexLimit(cfg.IndexLimit))
	}
	return opts
}

// runExtract contains the core, testable logic of the extract command.
func runExtract(
	ctx context.Context,
	logger *zap.Logger,
	cfg config.Interface,
	paths []string,
	provider storeProvider,
	stdout io.Writer,
) (err error) {
	var repo store.Repository
	if cfg.Database().Persist {
		r, cleanup, err := provider.Create(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize store: %w", err)
		}
		if cleanup != nil {
			defer cleanup()
		}
		repo = r
	}

	p := pipeline.New(
		pipeline.WithWorkers(cfg.Pipeline().Workers),
		pipeline.WithExtractOptions(extractOptions(cfg.Extract(), logger)...),
		pipeline.WithLogger(logger),
	)
	results, err := p.Run(ctx, paths)
	if err != nil {
		return err
	}

	out := cfg.Output()
	var failed []string
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r.Path)
			err = multierr.Append(err, fmt.Errorf("%s: %w", r.Path, r.Err))
			continue
		}

		g := export.FromResult(r.Path, r.Result)
		for _, d := range g.Diagnostics {
			logger.Warn("Component skipped", zap.String("path", r.Path), zap.String("reason", d))
		}

		if werr := writeGraph(g, out, r.Path, len(paths) > 1, stdout); werr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", r.Path, werr))
			continue
		}

		if repo != nil {
			saved, serr := repo.SaveRun(ctx, store.Run{Source: r.Path, Ontology: string(r.Document.ID.IRI), Graph: g})
			if serr != nil {
				err = multierr.Append(err, fmt.Errorf("%s: %w", r.Path, serr))
				continue
			}
			logger.Info("Run stored", zap.String("path", r.Path), zap.String("run_id", saved.ID.String()))
		}

		logger.Info("Graph extracted",
			zap.String("path", r.Path),
			zap.Int("nodes", len(g.Nodes)),
			zap.Int("edges", len(g.Edges)),
			zap.Duration("elapsed", r.Elapsed),
		)
	}

	if len(failed) > 0 {
		logger.Error("Some files could not be processed", zap.Strings("paths", failed))
	}
	return err
}

// writeGraph writes g to stdout, to out.Path, or into the directory out.Path
// when several inputs share one invocation.
func writeGraph(g export.Graph, out config.OutputConfig, source string, many bool, stdout io.Writer) (err error) {
	opts := []export.Opt{export.WithIndent(out.Indent), export.WithQuality(out.Quality)}

	if out.Path == "" {
		opts = append(opts, export.WithCompression(out.Compress))
		if err := export.Write(stdout, g, opts...); err != nil {
			return err
		}
		_, err = io.WriteString(stdout, "\n")
		return err
	}

	dest := out.Path
	if many {
		if err := os.MkdirAll(out.Path, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		dest = filepath.Join(out.Path, graphFileName(source, out.Compress))
	}
	opts = append(opts, export.WithCompression(out.Compress || export.IsCompressed(dest)))

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))
	return export.Write(f, g, opts...)
}

// graphFileName derives "<stem>.json[.br]" from an input path.
func graphFileName(source string, compress bool) string {
	base := filepath.Base(source)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
	if compress {
		name += export.CompressedExt
	}
	return name
}
