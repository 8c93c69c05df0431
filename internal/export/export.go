// File: internal/export/export.go

// Package export serializes extraction results as JSON, optionally brotli
// compressed, for a graph renderer to consume.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	jsoniter "github.com/json-iterator/go"

	"github.com/WebVOWL/horned-owl-serializer/internal/vowl"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CompressedExt is the file extension of brotli-compressed output.
const CompressedExt = ".br"

// Graph is the serialized form of a vowl.Result.
type Graph struct {
	Source      string       `json:"source,omitempty"`
	Nodes       []vowl.Node  `json:"nodes"`
	Edges       []vowl.Edge  `json:"edges"`
	Identifiers []vowl.Entry `json:"identifiers"`
	Diagnostics []string     `json:"diagnostics,omitempty"`
}

// FromResult converts an extraction result. Nil slices become empty so the
// output always carries the three arrays.
func FromResult(source string, res *vowl.Result) Graph {
	g := Graph{
		Source:      source,
		Nodes:       []vowl.Node{},
		Edges:       []vowl.Edge{},
		Identifiers: []vowl.Entry{},
	}
	if res == nil {
		return g
	}
	g.Nodes = append(g.Nodes, res.Nodes...)
	g.Edges = append(g.Edges, res.Edges...)
	g.Identifiers = append(g.Identifiers, res.Identifiers...)
	for _, d := range res.Diagnostics {
		g.Diagnostics = append(g.Diagnostics, d.Error())
	}
	return g
}

// Opt configures Write.
type Opt func(*settings)

type settings struct {
	compress bool
	quality  int
	indent   bool
}

// WithCompression brotli-compresses the output.
func WithCompression(on bool) Opt {
	return func(s *settings) { s.compress = on }
}

// WithQuality sets the brotli quality, 0 to 11.
func WithQuality(q int) Opt {
	return func(s *settings) {
		if q >= brotli.BestSpeed && q <= brotli.BestCompression {
			s.quality = q
		}
	}
}

// WithIndent pretty-prints the JSON.
func WithIndent(on bool) Opt {
	return func(s *settings) { s.indent = on }
}

var writerPool = sync.Pool{
	New: func() interface{} {
		return brotli.NewWriterLevel(nil, brotli.DefaultCompression)
	},
}

// Write encodes g to w.
func Write(w io.Writer, g Graph, opts ...Opt) error {
	s := settings{quality: brotli.DefaultCompression}
	for _, opt := range opts {
		opt(&s)
	}

	var (
		data []byte
		err  error
	)
	if s.indent {
		data, err = json.MarshalIndent(g, "", "  ")
	} else {
		data, err = json.Marshal(g)
	}
	if err != nil {
		return fmt.Errorf("encoding graph: %w", err)
	}

	if !s.compress {
		_, err = w.Write(data)
		return err
	}

	var bw *brotli.Writer
	if s.quality == brotli.DefaultCompression {
		bw = writerPool.Get().(*brotli.Writer)
		bw.Reset(w)
		defer writerPool.Put(bw)
	} else {
		bw = brotli.NewWriterLevel(w, s.quality)
	}
	if _, err := bw.Write(data); err != nil {
		return fmt.Errorf("compressing graph: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("compressing graph: %w", err)
	}
	return nil
}

// Read decodes a graph written by Write.
func Read(r io.Reader, compressed bool) (Graph, error) {
	if compressed {
		r = brotli.NewReader(r)
	}
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("decoding graph: %w", err)
	}
	return g, nil
}

// IsCompressed reports whether path names brotli-compressed output.
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), CompressedExt)
}
