// Package ingest converts a decoded canvas file into the canonical node model.
//
// Structural problems (missing required keys, JSON type errors) always fail
// the parse. Content anomalies, such as an unknown node type or a sizing
// keyword where a number was expected, are absorbed in Lenient mode and
// reported as diagnostics; Strict mode rejects them instead.
package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/node"
	"github.com/inamate/inamate/canvas-go/internal/paint"
	"github.com/inamate/inamate/canvas-go/internal/scene"
)

var (
	ErrUnknownNodeType = errors.New("unknown node type")
	ErrUnknownFill     = errors.New("unknown fill type")
	ErrDuplicateID     = errors.New("duplicate node id")
)

type Mode int

const (
	Lenient Mode = iota
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// Diagnostic records one content anomaly that was absorbed during a lenient parse.
type Diagnostic struct {
	NodeID  string `json:"nodeId"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result struct {
	Document    *scene.Document
	Diagnostics []Diagnostic
}

type Parser struct {
	mode   Mode
	logger *slog.Logger
}

type Option func(*Parser)

func WithMode(m Mode) Option {
	return func(p *Parser) { p.mode = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{mode: Lenient, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) Mode() Mode { return p.mode }

// Parse decodes raw file bytes and converts them with a lenient parser.
func Parse(data []byte) (*Result, error) {
	return NewParser().Parse(data)
}

// Parse decodes raw file bytes and converts them. A returned error wraps
// document.ErrMalformed.
func (p *Parser) Parse(data []byte) (*Result, error) {
	file, err := document.Decode(data)
	if err != nil {
		return nil, err
	}
	return p.Convert(file)
}

// Convert builds a canonical document from an already decoded file.
func (p *Parser) Convert(file *document.CanvasFile) (*Result, error) {
	c := &converter{parser: p}
	src := file.Document

	all := make(map[string]node.Node, len(src.Nodes))
	for _, key := range sortedKeys(src.Nodes) {
		n, err := c.convertNode(key, src.Nodes[key])
		if err != nil {
			return nil, err
		}
		if _, dup := all[n.NodeID()]; dup {
			if err := c.anomaly(key, n.NodeID(), "id", ErrDuplicateID); err != nil {
				return nil, err
			}
		}
		all[n.NodeID()] = n
	}

	doc := scene.NewDocument(file.Version)
	for k, v := range src.Bitmaps {
		doc.Bitmaps[k] = v
	}
	for k, v := range src.Properties {
		doc.Properties[k] = v
	}
	if src.EntrySceneID != nil {
		doc.EntrySceneID = *src.EntrySceneID
	}

	for _, id := range sceneOrder(src.Scenes, doc.EntrySceneID) {
		doc.Scenes = append(doc.Scenes, claim(src.Scenes[id], all))
	}
	for _, id := range sortedKeys(all) {
		doc.Detached.Insert(all[id])
	}

	p.logger.Debug("parsed document",
		"version", doc.Version,
		"mode", p.mode.String(),
		"scenes", len(doc.Scenes),
		"nodes", doc.NodeCount(),
		"diagnostics", len(c.diagnostics),
	)

	return &Result{Document: doc, Diagnostics: c.diagnostics}, nil
}

// sceneOrder puts the entry scene first, then the rest by key.
func sceneOrder(scenes map[string]document.Scene, entry string) []string {
	keys := sortedKeys(scenes)
	if _, ok := scenes[entry]; !ok {
		return keys
	}
	order := []string{entry}
	for _, k := range keys {
		if k != entry {
			order = append(order, k)
		}
	}
	return order
}

// claim moves every node reachable from the scene's children out of pool and
// into the new scene's table. A node already claimed, by this or an earlier
// scene, is not visited again.
func claim(src document.Scene, pool map[string]node.Node) *scene.Scene {
	s := scene.New(src.ID, src.Name)
	s.Children = append(s.Children, src.Children...)
	if src.BackgroundColor != nil {
		c := Color(*src.BackgroundColor)
		s.BackgroundColor = &c
	}

	queue := append([]string(nil), src.Children...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		n, ok := pool[id]
		if !ok {
			continue
		}
		delete(pool, id)
		s.Nodes.Insert(n)
		queue = append(queue, node.Children(n)...)
	}
	return s
}

type converter struct {
	parser      *Parser
	diagnostics []Diagnostic
}

// anomaly records a content problem at document.nodes.<key>.<field>. In
// strict mode it returns the structural error to abort with.
func (c *converter) anomaly(key, nodeID, field string, err error) error {
	if c.parser.mode == Strict {
		return &document.StructuralError{
			Path:   fmt.Sprintf("document.nodes.%s.%s", key, field),
			Reason: "rejected in strict mode",
			Err:    err,
		}
	}
	c.parser.logger.Warn("absorbed content anomaly", "node", nodeID, "field", field, "error", err)
	c.diagnostics = append(c.diagnostics, Diagnostic{NodeID: nodeID, Field: field, Message: err.Error()})
	return nil
}

func (c *converter) fill(key, nodeID string, f *document.Fill) (paint.Paint, error) {
	p, err := ResolveFill(f)
	if err != nil {
		return p, c.anomaly(key, nodeID, "fill", err)
	}
	return p, nil
}

func (c *converter) length(key, nodeID, field string, raw []byte) (float64, error) {
	v, err := document.DecodeLength(raw)
	if err != nil {
		return 0, c.anomaly(key, nodeID, field, err)
	}
	return v, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
