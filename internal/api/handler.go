// Package api exposes document parsing and rendering over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/engine"
	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/ingest"
	"github.com/inamate/inamate/canvas-go/internal/scene"
	"github.com/inamate/inamate/canvas-go/internal/store"
)

var (
	ErrSceneNotFound = errors.New("scene not found")
	ErrNoStore       = errors.New("snapshot store not configured")
)

// SnapshotSource yields the raw document saved for a project.
type SnapshotSource interface {
	LatestDocument(ctx context.Context, projectID string) ([]byte, error)
}

type Handler struct {
	parser    *ingest.Parser
	snapshots SnapshotSource
	maxBytes  int64
}

// NewHandler creates a handler. snapshots may be nil, in which case project
// routes answer 503.
func NewHandler(parser *ingest.Parser, snapshots SnapshotSource, maxBytes int64) *Handler {
	return &Handler{parser: parser, snapshots: snapshots, maxBytes: maxBytes}
}

func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/documents/parse", h.Parse).Methods("POST", "OPTIONS")
	r.HandleFunc("/documents/render", h.Render).Methods("POST", "OPTIONS")
	r.HandleFunc("/projects/{projectId}/summary", h.ProjectSummary).Methods("GET")
}

type SceneSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Children  int       `json:"children"`
	NodeCount int       `json:"nodeCount"`
	Bounds    geom.Rect `json:"bounds"`
}

type Summary struct {
	Version      string              `json:"version"`
	EntrySceneID string              `json:"entrySceneId,omitempty"`
	Scenes       []SceneSummary      `json:"scenes"`
	NodeCount    int                 `json:"nodeCount"`
	Kinds        map[string]int      `json:"kinds"`
	Detached     []string            `json:"detached"`
	Diagnostics  []ingest.Diagnostic `json:"diagnostics"`
}

type RenderResponse struct {
	SceneID  string               `json:"sceneId"`
	Bounds   geom.Rect            `json:"bounds"`
	Commands []engine.DrawCommand `json:"commands"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "mode": h.parser.Mode().String()})
}

// Parse ingests the request body and answers with a document summary.
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	res, err := h.parseBody(w, r)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summarize(res))
}

// Render ingests the request body and answers with the draw commands of the
// scene named by ?scene=, or of the entry scene.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	res, err := h.parseBody(w, r)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	s := res.Document.EntryScene()
	if id := r.URL.Query().Get("scene"); id != "" {
		var ok bool
		if s, ok = res.Document.Scene(id); !ok {
			handleServiceError(w, fmt.Errorf("%s: %w", id, ErrSceneNotFound))
			return
		}
	}
	if s == nil {
		handleServiceError(w, ErrSceneNotFound)
		return
	}

	sg := engine.BuildSceneGraph(s)
	commands := engine.CompileDrawCommands(sg)
	if commands == nil {
		commands = []engine.DrawCommand{}
	}
	writeJSON(w, http.StatusOK, RenderResponse{SceneID: s.ID, Bounds: sg.Root.Bounds, Commands: commands})
}

// ProjectSummary parses the latest saved snapshot of a project.
func (h *Handler) ProjectSummary(w http.ResponseWriter, r *http.Request) {
	if h.snapshots == nil {
		handleServiceError(w, ErrNoStore)
		return
	}
	projectID := mux.Vars(r)["projectId"]

	data, err := h.snapshots.LatestDocument(r.Context(), projectID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	res, err := h.parser.Parse(data)
	if err != nil {
		handleServiceError(w, fmt.Errorf("project %s: %w", projectID, err))
		return
	}
	writeJSON(w, http.StatusOK, summarize(res))
}

func (h *Handler) parseBody(w http.ResponseWriter, r *http.Request) (*ingest.Result, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return h.parser.Parse(data)
}

func summarize(res *ingest.Result) Summary {
	doc := res.Document
	sum := Summary{
		Version:      doc.Version,
		EntrySceneID: doc.EntrySceneID,
		Scenes:       []SceneSummary{},
		NodeCount:    doc.NodeCount(),
		Kinds:        map[string]int{},
		Detached:     doc.Detached.IDs(),
		Diagnostics:  res.Diagnostics,
	}
	if sum.Diagnostics == nil {
		sum.Diagnostics = []ingest.Diagnostic{}
	}

	count := func(r *scene.Repository) {
		for _, id := range r.IDs() {
			n, _ := r.Get(id)
			sum.Kinds[n.Kind().String()]++
		}
	}
	for _, s := range doc.Scenes {
		count(s.Nodes)
		sum.Scenes = append(sum.Scenes, SceneSummary{
			ID:        s.ID,
			Name:      s.Name,
			Children:  len(s.Children),
			NodeCount: s.Nodes.Len(),
			Bounds:    engine.BuildSceneGraph(s).Root.Bounds,
		})
	}
	count(doc.Detached)
	return sum
}

func handleServiceError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	var malformed *document.StructuralError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "document too large"})
	case errors.As(err, &malformed):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":  "malformed document",
			"path":   malformed.Path,
			"detail": err.Error(),
		})
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, ErrSceneNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "scene not found"})
	case errors.Is(err, ErrNoStore):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "snapshot store not configured"})
	default:
		slog.Error("service error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
