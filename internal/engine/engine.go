// Package engine turns a parsed canvas document into a retained scene graph
// and a flat list of draw commands for a frontend renderer.
package engine

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/ingest"
	"github.com/inamate/inamate/canvas-go/internal/scene"
)

var (
	ErrNoDocument    = errors.New("no document loaded")
	ErrSceneNotFound = errors.New("scene not found")
)

// Engine owns the loaded document and the scene graph of the current scene.
// It is not safe for concurrent use.
type Engine struct {
	parser *ingest.Parser

	// Document state
	doc         *scene.Document
	diagnostics []ingest.Diagnostic
	sceneID     string

	// Retained scene graph
	sceneGraph *SceneGraph

	// Selection state (engine owns this)
	selection []string

	// Dirty flag - scene graph needs rebuild
	dirty bool
}

// NewEngine creates a new engine instance. opts configure the ingestion parser.
func NewEngine(opts ...ingest.Option) *Engine {
	return &Engine{
		parser:     ingest.NewParser(opts...),
		sceneGraph: NewSceneGraph(),
		dirty:      true,
	}
}

// --- Commands (frontend → engine) ---

// LoadDocument parses a canvas file and makes its entry scene current.
// On error the previously loaded document is kept.
func (e *Engine) LoadDocument(jsonData string) error {
	res, err := e.parser.Parse([]byte(jsonData))
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	e.setDocument(res)
	return nil
}

// LoadSampleDocument loads the built-in sample document.
func (e *Engine) LoadSampleDocument() error {
	data, err := document.NewSampleFile().Encode()
	if err != nil {
		return fmt.Errorf("encode sample: %w", err)
	}
	return e.LoadDocument(string(data))
}

func (e *Engine) setDocument(res *ingest.Result) {
	e.doc = res.Document
	e.diagnostics = res.Diagnostics
	e.sceneID = ""
	if s := e.doc.EntryScene(); s != nil {
		e.sceneID = s.ID
	}
	e.selection = nil
	e.dirty = true
}

// SetScene switches the current scene.
func (e *Engine) SetScene(id string) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if _, ok := e.doc.Scene(id); !ok {
		return fmt.Errorf("%s: %w", id, ErrSceneNotFound)
	}
	if e.sceneID != id {
		e.sceneID = id
		e.selection = nil
		e.dirty = true
	}
	return nil
}

// SetSelection sets the selected object IDs.
func (e *Engine) SetSelection(ids []string) {
	e.selection = ids
}

// --- Queries (frontend ← engine) ---

// Graph returns the scene graph of the current scene, rebuilding it if needed.
func (e *Engine) Graph() *SceneGraph {
	if e.dirty {
		var current *scene.Scene
		if e.doc != nil {
			current, _ = e.doc.Scene(e.sceneID)
		}
		e.sceneGraph = BuildSceneGraph(current)
		e.dirty = false
	}
	return e.sceneGraph
}

// Commands returns the draw commands of the current scene.
func (e *Engine) Commands() []DrawCommand {
	if e.doc == nil {
		return nil
	}
	return CompileDrawCommands(e.Graph())
}

// Render returns the draw commands of the current scene as JSON.
func (e *Engine) Render() string {
	result, _ := DrawCommandsToJSON(e.Commands())
	return result
}

// HitTest performs a hit test at the given coordinates.
// Returns the object ID of the topmost hit, or empty string.
func (e *Engine) HitTest(x, y float64) string {
	if e.doc == nil {
		return ""
	}
	return HitTest(e.Graph(), x, y)
}

// GetSelectionBounds returns the bounding box of the current selection as JSON.
func (e *Engine) GetSelectionBounds() string {
	if e.doc == nil || len(e.selection) == 0 {
		return RectToJSON(GetSelectionBounds(nil, nil))
	}
	return RectToJSON(GetSelectionBounds(e.Graph(), e.selection))
}

// SceneInfo summarizes a scene for the frontend.
type SceneInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Children        []string `json:"children"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	NodeCount       int      `json:"nodeCount"`
}

func sceneInfo(s *scene.Scene) SceneInfo {
	info := SceneInfo{ID: s.ID, Name: s.Name, Children: s.Children, NodeCount: s.Nodes.Len()}
	if s.BackgroundColor != nil {
		info.BackgroundColor = s.BackgroundColor.Hex()
	}
	return info
}

// GetScene returns the current scene metadata as JSON.
func (e *Engine) GetScene() string {
	if e.doc == nil || e.sceneID == "" {
		return "{}"
	}
	s, ok := e.doc.Scene(e.sceneID)
	if !ok {
		return "{}"
	}
	data, _ := json.Marshal(sceneInfo(s))
	return string(data)
}

// GetScenes lists every scene of the document in order as JSON.
func (e *Engine) GetScenes() string {
	infos := []SceneInfo{}
	if e.doc != nil {
		for _, s := range e.doc.Scenes {
			infos = append(infos, sceneInfo(s))
		}
	}
	data, _ := json.Marshal(infos)
	return string(data)
}

// GetDiagnostics returns the anomalies absorbed while loading the document as JSON.
func (e *Engine) GetDiagnostics() string {
	diags := e.diagnostics
	if diags == nil {
		diags = []ingest.Diagnostic{}
	}
	data, _ := json.Marshal(diags)
	return string(data)
}

// GetSelection returns the current selection as JSON.
func (e *Engine) GetSelection() string {
	sel := e.selection
	if sel == nil {
		sel = []string{}
	}
	data, _ := json.Marshal(sel)
	return string(data)
}

// Document returns the loaded document, or nil.
func (e *Engine) Document() *scene.Document {
	return e.doc
}

// SceneID returns the id of the current scene.
func (e *Engine) SceneID() string {
	return e.sceneID
}

// Diagnostics returns the anomalies absorbed while loading the document.
func (e *Engine) Diagnostics() []ingest.Diagnostic {
	return e.diagnostics
}
