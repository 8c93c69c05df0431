// File: cmd/entities.go
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/WebVOWL/horned-owl-serializer/internal/config"
	"github.com/WebVOWL/horned-owl-serializer/internal/entity"
	"github.com/WebVOWL/horned-owl-serializer/internal/parser"
	"github.com/WebVOWL/horned-owl-serializer/internal/walker"
)

func newEntitiesCmd() *cobra.Command {
	var withKinds bool

	entitiesCmd := &cobra.Command{
		Use:   "entities <file>",
		Short: "List the distinct IRIs used by an ontology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return runEntities(cfg, args[0], withKinds, cmd.OutOrStdout())
		},
	}
	entitiesCmd.Flags().BoolVarP(&withKinds, "kinds", "k", false, "Print the entity kind next to each IRI; punned IRIs appear once per kind.")
	return entitiesCmd
}

func runEntities(cfg config.Interface, path string, withKinds bool, out io.Writer) error {
	doc, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	opt := walker.WithMaxDepth(cfg.Extract().MaxDepth)

	if withKinds {
		entities, err := entity.CollectEntities(doc, opt)
		if err != nil {
			return fmt.Errorf("collecting entities: %w", err)
		}
		for _, e := range entities {
			fmt.Fprintf(out, "%s\t%s\n", e.Kind, e.ID)
		}
		return nil
	}

	iris, err := entity.CollectIRIs(doc, opt)
	if err != nil {
		return fmt.Errorf("collecting IRIs: %w", err)
	}
	for _, iri := range iris {
		fmt.Fprintln(out, iri)
	}
	return nil
}
