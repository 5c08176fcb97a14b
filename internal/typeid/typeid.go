package typeid

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixNode     = "node"
	PrefixScene    = "scene"
	PrefixDocument = "doc"
	PrefixProject  = "proj"
	PrefixSnapshot = "snap"
	PrefixRequest  = "req"
	PrefixBitmap   = "bmp"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewNodeID() string     { return New(PrefixNode) }
func NewSceneID() string    { return New(PrefixScene) }
func NewDocumentID() string { return New(PrefixDocument) }
func NewRequestID() string  { return New(PrefixRequest) }
func NewBitmapID() string   { return New(PrefixBitmap) }

func Validate(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
