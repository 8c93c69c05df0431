// File: cmd/neighbors.go
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/WebVOWL/horned-owl-serializer/internal/config"
	"github.com/WebVOWL/horned-owl-serializer/internal/export"
	"github.com/WebVOWL/horned-owl-serializer/internal/knowledgegraph"
	"github.com/WebVOWL/horned-owl-serializer/internal/observability"
	"github.com/WebVOWL/horned-owl-serializer/internal/parser"
	"github.com/WebVOWL/horned-owl-serializer/internal/vowl"
)

func newNeighborsCmd() *cobra.Command {
	var closure bool

	neighborsCmd := &cobra.Command{
		Use:   "neighbors <file> <iri>",
		Short: "List the outgoing edges of one identifier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := getConfigFromContext(ctx)
			if err != nil {
				return err
			}
			return runNeighbors(ctx, observability.GetLogger(), cfg, args[0], args[1], closure, cmd.OutOrStdout())
		},
	}
	neighborsCmd.Flags().BoolVar(&closure, "closure", false, "Also list all transitive superclasses and subclasses.")
	return neighborsCmd
}

func runNeighbors(ctx context.Context, logger *zap.Logger, cfg config.Interface, path, iri string, closure bool, out io.Writer) error {
	doc, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	res, err := vowl.Extract(doc, extractOptions(cfg.Extract(), logger)...)
	if err != nil {
		return err
	}

	kg := knowledgegraph.NewInMemoryKG(logger)
	if err := kg.Load(ctx, export.FromResult(path, res)); err != nil {
		return err
	}
	idx, ok := kg.Lookup(iri)
	if !ok {
		return fmt.Errorf("%s does not mention %s", path, iri)
	}

	neighbors, err := kg.GetNeighbors(ctx, idx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		if n.Edge.Kind == vowl.EdgeObjectProperty {
			predicate, err := kg.IRI(n.Edge.Predicate)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", n.Edge.Kind, predicate, n.IRI)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", n.Edge.Kind, n.IRI)
	}

	if !closure {
		return nil
	}
	supers, err := kg.Superclasses(ctx, idx)
	if err != nil {
		return err
	}
	subs, err := kg.Subclasses(ctx, idx)
	if err != nil {
		return err
	}
	if err := printClosure(kg, out, "superclass", supers); err != nil {
		return err
	}
	return printClosure(kg, out, "subclass", subs)
}

func printClosure(kg *knowledgegraph.InMemoryKG, out io.Writer, label string, indices []vowl.Index) error {
	for _, i := range indices {
		iri, err := kg.IRI(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", label, iri)
	}
	return nil
}
