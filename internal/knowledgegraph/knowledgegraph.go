// File: internal/knowledgegraph/knowledgegraph.go

// Package knowledgegraph holds an extracted VOWL graph in memory and answers
// navigation queries over it: node lookup by IRI, outgoing edges, neighbours
// and the transitive superclass closure.
package knowledgegraph

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/WebVOWL/horned-owl-serializer/internal/export"
	"github.com/WebVOWL/horned-owl-serializer/internal/vowl"
)

// InMemoryKG is a concurrency-safe, in-memory view of one extracted graph.
type InMemoryKG struct {
	iris     map[vowl.Index]string
	byIRI    map[string]vowl.Index
	nodes    map[vowl.Index]vowl.Node // equivalent-class nodes are stored under every member
	edges    []vowl.Edge
	outgoing map[vowl.Index][]int // Key: identifier index, Value: positions in edges
	incoming map[vowl.Index][]int
	mu       sync.RWMutex
	log      *zap.Logger
}

// Neighbor is the far end of an outgoing edge.
type Neighbor struct {
	Edge  vowl.Edge
	Index vowl.Index
	IRI   string
}

// NewInMemoryKG creates a new, empty in-memory knowledge graph.
func NewInMemoryKG(logger *zap.Logger) *InMemoryKG {
	if logger == nil {
		logger = zap.NewNop()
	}
	kg := &InMemoryKG{log: logger.Named("InMemoryKG")}
	kg.reset()
	return kg
}

func (kg *InMemoryKG) reset() {
	kg.iris = make(map[vowl.Index]string)
	kg.byIRI = make(map[string]vowl.Index)
	kg.nodes = make(map[vowl.Index]vowl.Node)
	kg.edges = nil
	kg.outgoing = make(map[vowl.Index][]int)
	kg.incoming = make(map[vowl.Index][]int)
}

// Load replaces the contents of the graph with g. On error the graph is left
// empty.
func (kg *InMemoryKG) Load(ctx context.Context, g export.Graph) error {
	kg.mu.Lock()
	defer kg.mu.Unlock()

	kg.reset()
	for _, e := range g.Identifiers {
		kg.iris[e.Index] = e.ID
		kg.byIRI[e.ID] = e.Index
	}
	for _, n := range g.Nodes {
		if err := kg.addNode(n); err != nil {
			kg.reset()
			return err
		}
	}
	for _, e := range g.Edges {
		if err := ctx.Err(); err != nil {
			kg.reset()
			return err
		}
		if err := kg.addEdge(e); err != nil {
			kg.reset()
			return err
		}
	}
	kg.log.Debug("Graph loaded",
		zap.String("source", g.Source),
		zap.Int("identifiers", len(kg.iris)),
		zap.Int("edges", len(kg.edges)),
	)
	return nil
}

// AddIdentifier registers an IRI under an index. Re-registering the same pair
// is a no-op; any other reuse is an error.
func (kg *InMemoryKG) AddIdentifier(ctx context.Context, idx vowl.Index, iri string) error {
	kg.mu.Lock()
	defer kg.mu.Unlock()

	if prev, ok := kg.iris[idx]; ok && prev != iri {
		return fmt.Errorf("index %d already names '%s'", idx, prev)
	}
	if prev, ok := kg.byIRI[iri]; ok && prev != idx {
		return fmt.Errorf("identifier '%s' already has index %d", iri, prev)
	}
	kg.iris[idx] = iri
	kg.byIRI[iri] = idx
	return nil
}

// AddNode adds a node. If a node already sits at the same index, it is overwritten.
func (kg *InMemoryKG) AddNode(ctx context.Context, node vowl.Node) error {
	kg.mu.Lock()
	defer kg.mu.Unlock()
	return kg.addNode(node)
}

func (kg *InMemoryKG) addNode(node vowl.Node) error {
	members := []vowl.Index{node.Index}
	if node.Kind == vowl.NodeEquivalentClass {
		members = node.Group
	}
	for _, m := range members {
		if _, ok := kg.iris[m]; !ok {
			return fmt.Errorf("node %s refers to unknown index %d", node, m)
		}
	}
	for _, m := range members {
		kg.nodes[m] = node
	}
	kg.log.Debug("Node added or updated", zap.Stringer("node", node))
	return nil
}

// AddEdge adds an edge. Both endpoints, and the predicate of an object
// property edge, must be known identifiers.
func (kg *InMemoryKG) AddEdge(ctx context.Context, edge vowl.Edge) error {
	kg.mu.Lock()
	defer kg.mu.Unlock()
	return kg.addEdge(edge)
}

func (kg *InMemoryKG) addEdge(edge vowl.Edge) error {
	if _, ok := kg.iris[edge.From]; !ok {
		return fmt.Errorf("source index %d not found for edge %s", edge.From, edge)
	}
	if _, ok := kg.iris[edge.To]; !ok {
		return fmt.Errorf("destination index %d not found for edge %s", edge.To, edge)
	}
	if edge.Kind == vowl.EdgeObjectProperty {
		if _, ok := kg.iris[edge.Predicate]; !ok {
			return fmt.Errorf("predicate index %d not found for edge %s", edge.Predicate, edge)
		}
	}
	pos := len(kg.edges)
	kg.edges = append(kg.edges, edge)
	kg.outgoing[edge.From] = append(kg.outgoing[edge.From], pos)
	kg.incoming[edge.To] = append(kg.incoming[edge.To], pos)
	kg.log.Debug("Edge added", zap.Stringer("edge", edge))
	return nil
}

// Lookup finds the index of an IRI.
func (kg *InMemoryKG) Lookup(iri string) (vowl.Index, bool) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()
	idx, ok := kg.byIRI[iri]
	return idx, ok
}

// IRI returns the identifier at idx.
func (kg *InMemoryKG) IRI(idx vowl.Index) (string, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()
	iri, ok := kg.iris[idx]
	if !ok {
		return "", fmt.Errorf("index %d not found", idx)
	}
	return iri, nil
}

// GetNode retrieves the node covering idx.
func (kg *InMemoryKG) GetNode(ctx context.Context, idx vowl.Index) (vowl.Node, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()

	node, ok := kg.nodes[idx]
	if !ok {
		return vowl.Node{}, fmt.Errorf("no node at index %d", idx)
	}
	return node, nil
}

// GetEdges retrieves all outgoing edges of idx, in insertion order.
func (kg *InMemoryKG) GetEdges(ctx context.Context, idx vowl.Index) ([]vowl.Edge, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()

	if _, ok := kg.iris[idx]; !ok {
		return nil, fmt.Errorf("index %d not found", idx)
	}
	positions := kg.outgoing[idx]
	edges := make([]vowl.Edge, 0, len(positions))
	for _, p := range positions {
		edges = append(edges, kg.edges[p])
	}
	return edges, nil
}

// GetNeighbors finds everything reachable from idx over one outgoing edge.
func (kg *InMemoryKG) GetNeighbors(ctx context.Context, idx vowl.Index) ([]Neighbor, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()

	if _, ok := kg.iris[idx]; !ok {
		return nil, fmt.Errorf("index %d not found", idx)
	}
	positions := kg.outgoing[idx]
	neighbors := make([]Neighbor, 0, len(positions))
	for _, p := range positions {
		e := kg.edges[p]
		neighbors = append(neighbors, Neighbor{Edge: e, Index: e.To, IRI: kg.iris[e.To]})
	}
	return neighbors, nil
}

// Superclasses returns the transitive closure of subclassOf edges leaving
// idx, sorted by index. Cycles are tolerated.
func (kg *InMemoryKG) Superclasses(ctx context.Context, idx vowl.Index) ([]vowl.Index, error) {
	return kg.closure(ctx, idx, kg.outgoing, func(e vowl.Edge) vowl.Index { return e.To })
}

// Subclasses is the inverse of Superclasses.
func (kg *InMemoryKG) Subclasses(ctx context.Context, idx vowl.Index) ([]vowl.Index, error) {
	return kg.closure(ctx, idx, kg.incoming, func(e vowl.Edge) vowl.Index { return e.From })
}

func (kg *InMemoryKG) closure(ctx context.Context, start vowl.Index, adj map[vowl.Index][]int, next func(vowl.Edge) vowl.Index) ([]vowl.Index, error) {
	kg.mu.RLock()
	defer kg.mu.RUnlock()

	if _, ok := kg.iris[start]; !ok {
		return nil, fmt.Errorf("index %d not found", start)
	}
	seen := map[vowl.Index]bool{start: true}
	queue := []vowl.Index{start}
	var out []vowl.Index
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]
		for _, p := range adj[cur] {
			e := kg.edges[p]
			if e.Kind != vowl.EdgeSubclassOf {
				continue
			}
			n := next(e)
			if seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
			queue = append(queue, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Stats summarises the graph.
type Stats struct {
	Identifiers int
	Nodes       map[vowl.NodeKind]int
	Edges       map[vowl.EdgeKind]int
}

// Stats counts identifiers, distinct nodes per kind and edges per kind.
func (kg *InMemoryKG) Stats() Stats {
	kg.mu.RLock()
	defer kg.mu.RUnlock()

	s := Stats{
		Identifiers: len(kg.iris),
		Nodes:       make(map[vowl.NodeKind]int),
		Edges:       make(map[vowl.EdgeKind]int),
	}
	for idx, n := range kg.nodes {
		// count equivalent-class nodes once, under their first member
		if n.Kind == vowl.NodeEquivalentClass && idx != n.Group[0] {
			continue
		}
		s.Nodes[n.Kind]++
	}
	for _, e := range kg.edges {
		s.Edges[e.Kind]++
	}
	return s
}
