// File: internal/vowl/extractor.go

// Package vowl projects an ontology document onto a deduplicated node and edge
// graph for visualisation.
package vowl

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
	"github.com/WebVOWL/horned-owl-serializer/internal/walker"
)

// Extractor is a context visitor that builds a graph from a subset of axiom
// kinds. Everything else is still traversed but emits nothing.
//
// An Extractor holds the state of one document. Call Reset before reusing it.
type Extractor struct {
	walker.BaseContextVisitor[Element]

	cache *Cache
	nodes []Node
	edges []Edge
	diags []error
	log   *zap.Logger
	limit uint64
}

// Opt configures an Extractor or a call to Extract.
type Opt func(*settings)

type settings struct {
	logger    *zap.Logger
	limit     uint64
	maxDepth  int
	canonical bool
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *zap.Logger) Opt {
	return func(s *settings) { s.logger = logger }
}

// WithIndexLimit bounds the number of distinct identifiers.
func WithIndexLimit(n uint64) Opt {
	return func(s *settings) { s.limit = n }
}

// WithMaxDepth bounds class expression and data range nesting during Extract.
func WithMaxDepth(n int) Opt {
	return func(s *settings) { s.maxDepth = n }
}

// WithCanonicalOrder makes Extract visit components in canonical order, so
// index assignment does not depend on the order the reader produced.
func WithCanonicalOrder(on bool) Opt {
	return func(s *settings) { s.canonical = on }
}

func newSettings(opts []Opt) settings {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// NewExtractor creates an empty Extractor.
func NewExtractor(opts ...Opt) *Extractor {
	s := newSettings(opts)
	return &Extractor{
		cache: NewCache(s.limit),
		log:   s.logger.With(zap.String("component", "vowl_extractor")),
		limit: s.limit,
	}
}

// Reset empties the extractor so it can take another document.
func (x *Extractor) Reset() {
	x.cache = NewCache(x.limit)
	x.nodes = nil
	x.edges = nil
	x.diags = nil
}

// Nodes returns the nodes emitted so far.
func (x *Extractor) Nodes() []Node { return x.nodes }

// Edges returns the edges emitted so far.
func (x *Extractor) Edges() []Edge { return x.edges }

// Cache returns the identifier cache.
func (x *Extractor) Cache() *Cache { return x.cache }

// Diagnostics returns the per-component problems recorded so far.
func (x *Extractor) Diagnostics() []error { return x.diags }

func (x *Extractor) diagnose(err error) {
	x.log.Debug("Skipping component", zap.Error(err))
	x.diags = append(x.diags, err)
}

func (x *Extractor) resolve(id string) (bool, Index, bool) {
	inserted, idx, err := x.cache.Resolve(id)
	if err != nil {
		x.diagnose(err)
		return false, 0, false
	}
	return inserted, idx, true
}

// declare resolves id and emits a node of kind the first time it is seen.
func (x *Extractor) declare(kind NodeKind, id owl.IRI) walker.Option[Element] {
	inserted, idx, ok := x.resolve(string(id))
	if !ok {
		return walker.None[Element]()
	}
	node := Node{Kind: kind, Index: idx}
	if inserted {
		x.nodes = append(x.nodes, node)
	}
	return walker.Some[Element](node)
}

func (x *Extractor) VisitDeclareClass(_ walker.Option[Element], ax owl.DeclareClass) walker.Option[Element] {
	return x.declare(NodeClass, ax.Class.IRI)
}

func (x *Extractor) VisitDeclareNamedIndividual(_ walker.Option[Element], ax owl.DeclareNamedIndividual) walker.Option[Element] {
	return x.declare(NodeThing, ax.Individual.IRI)
}

// VisitEquivalentClasses groups the named members that are new to the cache.
// Composite members and members already indexed do not join the group.
func (x *Extractor) VisitEquivalentClasses(_ walker.Option[Element], ax owl.EquivalentClasses) walker.Option[Element] {
	var group []Index
	for _, ce := range ax.Classes {
		c, ok := owl.AsClass(ce)
		if !ok {
			continue
		}
		inserted, idx, ok := x.resolve(string(c.IRI))
		if ok && inserted {
			group = append(group, idx)
		}
	}
	if len(group) == 0 {
		return walker.None[Element]()
	}
	node := Node{Kind: NodeEquivalentClass, Index: group[0], Group: group}
	x.nodes = append(x.nodes, node)
	return walker.Some[Element](node)
}

func (x *Extractor) VisitSubClassOf(_ walker.Option[Element], ax owl.SubClassOf) walker.Option[Element] {
	if ax.Sub == nil || ax.Sup == nil {
		// Reported by the walker.
		return walker.None[Element]()
	}
	sub, subOK := owl.AsClass(ax.Sub)
	sup, supOK := owl.AsClass(ax.Sup)
	if !subOK || !supOK {
		x.diagnose(&UnsupportedError{
			Component: owl.KindSubClassOf,
			Reason:    fmt.Sprintf("sub class %T and super class %T must both be named classes", ax.Sub, ax.Sup),
		})
		return walker.None[Element]()
	}

	subIns, subIdx, ok := x.resolve(string(sub.IRI))
	if !ok {
		return walker.None[Element]()
	}
	if subIns {
		x.nodes = append(x.nodes, Node{Kind: NodeClass, Index: subIdx})
	}
	supIns, supIdx, ok := x.resolve(string(sup.IRI))
	if !ok {
		return walker.None[Element]()
	}
	if supIns {
		x.nodes = append(x.nodes, Node{Kind: NodeClass, Index: supIdx})
	}

	edge := Edge{Kind: EdgeSubclassOf, From: subIdx, To: supIdx}
	x.edges = append(x.edges, edge)
	return walker.Some[Element](edge)
}

// VisitObjectPropertyAssertion emits a subject, predicate, object edge. The
// individuals get indices but no nodes; they become vertices only through
// their own declarations. An assertion over an inverse property is stored
// against the named property with subject and object swapped.
func (x *Extractor) VisitObjectPropertyAssertion(_ walker.Option[Element], ax owl.ObjectPropertyAssertion) walker.Option[Element] {
	from, to := ax.From, ax.To
	var prop owl.ObjectProperty
	switch p := ax.Property.(type) {
	case owl.ObjectProperty:
		prop = p
	case owl.InverseObjectProperty:
		prop = p.Property
		from, to = to, from
	default:
		// The walker reports the empty slot as a NodeError.
		return walker.None[Element]()
	}
	if from == nil || to == nil {
		return walker.None[Element]()
	}

	_, pIdx, ok := x.resolve(string(prop.IRI))
	if !ok {
		return walker.None[Element]()
	}
	_, sIdx, ok := x.resolve(owl.IndividualKey(from))
	if !ok {
		return walker.None[Element]()
	}
	_, oIdx, ok := x.resolve(owl.IndividualKey(to))
	if !ok {
		return walker.None[Element]()
	}

	edge := Edge{Kind: EdgeObjectProperty, From: sIdx, Predicate: pIdx, To: oIdx}
	x.edges = append(x.edges, edge)
	return walker.Some[Element](edge)
}

// Result is the outcome of extracting one document.
type Result struct {
	Nodes       []Node
	Edges       []Edge
	Identifiers []Entry
	// Diagnostics lists the components that were skipped, and why.
	Diagnostics []error
}

// Extract runs a fresh Extractor over doc.
//
// Problems confined to a single component are reported in Result.Diagnostics
// and do not fail the call. An absent document, or a document with more
// distinct identifiers than the index limit, is an error; in the second case
// the partial result is returned alongside it.
func Extract(doc *owl.Document, opts ...Opt) (*Result, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	s := newSettings(opts)
	if s.canonical {
		doc = doc.Sorted()
	}

	x := NewExtractor(opts...)
	w := walker.New[Element](x, walker.WithMaxDepth(s.maxDepth), walker.WithLogger(s.logger))
	walkErr := w.Document(doc)

	res := &Result{
		Nodes:       x.Nodes(),
		Edges:       x.Edges(),
		Identifiers: x.Cache().Entries(),
		Diagnostics: append(x.Diagnostics(), multierr.Errors(walkErr)...),
	}
	x.log.Debug("Extraction finished",
		zap.Int("components", doc.Len()),
		zap.Int("nodes", len(res.Nodes)),
		zap.Int("edges", len(res.Edges)),
		zap.Int("identifiers", len(res.Identifiers)),
		zap.Int("diagnostics", len(res.Diagnostics)),
	)

	for _, d := range res.Diagnostics {
		if errors.Is(d, ErrIndexExhausted) {
			return res, fmt.Errorf("extracting document: %w", d)
		}
	}
	return res, nil
}
