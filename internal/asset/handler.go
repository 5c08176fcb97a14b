// Package asset stores the bitmaps that image nodes and image paints
// reference by id.
package asset

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"github.com/inamate/inamate/canvas-go/internal/typeid"
)

const maxUploadSize = 10 << 20 // 10MB

var (
	ErrUnsupportedType = errors.New("only PNG and JPEG images are supported")
	ErrNotFound        = errors.New("bitmap not found")
)

// Bitmap describes a stored image. ID is what a document's bitmaps table and
// image refs point at.
type Bitmap struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Type   string `json:"type"`
	Name   string `json:"name,omitempty"`
}

// Store keeps bitmaps as PNG files in a directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create bitmap dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Put decodes a PNG or JPEG image and saves it as PNG under a new bitmap id.
func (s *Store) Put(r io.Reader, name string) (*Bitmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	id := typeid.NewBitmapID()
	filePath := filepath.Join(s.dir, id+".png")
	out, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("create bitmap file: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("encode png: %w", err)
	}

	bounds := img.Bounds()
	slog.Debug("stored bitmap", "id", id, "source", format, "width", bounds.Dx(), "height", bounds.Dy())
	return &Bitmap{
		ID:     id,
		URL:    fmt.Sprintf("/bitmaps/%s.png", id),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Type:   "png",
		Name:   name,
	}, nil
}

// Delete removes a stored bitmap.
func (s *Store) Delete(id string) error {
	if err := typeid.Validate(id, typeid.PrefixBitmap); err != nil {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err := os.Remove(filepath.Join(s.dir, id+".png")); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("remove bitmap: %w", err)
	}
	return nil
}

// Handler serves bitmap upload and retrieval endpoints.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/bitmaps", h.Upload).Methods("POST", "OPTIONS")
	r.HandleFunc("/bitmaps/{bitmapId}", h.Delete).Methods("DELETE")
	r.PathPrefix("/bitmaps/").Handler(h.Serve()).Methods("GET")
}

// Upload handles POST /bitmaps (multipart form with "file" field).
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "file too large (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/png") && !strings.HasPrefix(contentType, "image/jpeg") {
		http.Error(w, ErrUnsupportedType.Error(), http.StatusBadRequest)
		return
	}

	bmp, err := h.store.Put(file, header.Filename)
	if err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			http.Error(w, "invalid image: "+err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("store bitmap", "error", err)
		http.Error(w, "failed to save file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(bmp)
}

// Delete handles DELETE /bitmaps/{bitmapId}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(mux.Vars(r)["bitmapId"])
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "bitmap not found", http.StatusNotFound)
	default:
		slog.Error("delete bitmap", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// Serve returns an http.Handler that serves stored bitmap files with caching headers.
func (h *Handler) Serve() http.Handler {
	fs := http.FileServer(http.Dir(h.store.dir))
	return http.StripPrefix("/bitmaps/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Bitmap ids are unique, so files are immutable
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		fs.ServeHTTP(w, r)
	}))
}
