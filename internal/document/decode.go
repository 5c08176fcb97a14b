package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrMalformed is wrapped by every structural decoding failure.
var ErrMalformed = errors.New("malformed document")

// StructuralError reports a document whose shape is wrong: invalid JSON, a
// missing required field or a field of the wrong JSON type. Path is a dotted
// location such as document.scenes.main.children.
type StructuralError struct {
	Path   string
	Reason string
	Err    error
}

func (e *StructuralError) Error() string {
	msg := ErrMalformed.Error()
	if e.Path != "" {
		msg += " at " + e.Path
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StructuralError) Is(target error) bool { return target == ErrMalformed }

func (e *StructuralError) Unwrap() error { return e.Err }

func structural(path, reason string, err error) error {
	return &StructuralError{Path: path, Reason: reason, Err: err}
}

// Decode parses a canvas file. Any structural problem aborts the whole decode
// and no partial file is returned. Nodes with an unrecognized type tag decode
// to *UnknownNode rather than failing.
func Decode(data []byte) (*CanvasFile, error) {
	top, err := object(data, "")
	if err != nil {
		return nil, err
	}

	var file CanvasFile
	if err := requireString(top, "", "version", &file.Version); err != nil {
		return nil, err
	}

	docRaw, err := require(top, "", "document", "object")
	if err != nil {
		return nil, err
	}
	doc, err := object(docRaw, "document")
	if err != nil {
		return nil, err
	}

	if err := decodeDocument(doc, &file.Document); err != nil {
		return nil, err
	}
	return &file, nil
}

func decodeDocument(doc map[string]json.RawMessage, out *Document) error {
	const path = "document"

	for _, key := range []string{"bitmaps", "properties"} {
		raw, err := require(doc, path, key, "object")
		if err != nil {
			return err
		}
		var m map[string]json.RawMessage
		if err := json.Unmarshal(raw, &m); err != nil {
			return structural(path+"."+key, "invalid object", err)
		}
		if key == "bitmaps" {
			out.Bitmaps = m
		} else {
			out.Properties = m
		}
	}

	if raw, ok := doc["entry_scene_id"]; ok && kindOf(raw) != "null" {
		if kindOf(raw) != "string" {
			return structural(path+".entry_scene_id", "expected string, got "+kindOf(raw), nil)
		}
		var id string
		_ = json.Unmarshal(raw, &id)
		out.EntrySceneID = &id
	}

	nodesRaw, err := require(doc, path, "nodes", "object")
	if err != nil {
		return err
	}
	nodes, err := object(nodesRaw, path+".nodes")
	if err != nil {
		return err
	}
	out.Nodes = make(map[string]Node, len(nodes))
	for _, key := range sortedKeys(nodes) {
		n, err := decodeNode(path+".nodes."+key, nodes[key])
		if err != nil {
			return err
		}
		out.Nodes[key] = n
	}

	scenesRaw, err := require(doc, path, "scenes", "object")
	if err != nil {
		return err
	}
	scenes, err := object(scenesRaw, path+".scenes")
	if err != nil {
		return err
	}
	out.Scenes = make(map[string]Scene, len(scenes))
	for _, key := range sortedKeys(scenes) {
		s, err := decodeScene(path+".scenes."+key, scenes[key])
		if err != nil {
			return err
		}
		out.Scenes[key] = s
	}

	return nil
}

func decodeScene(path string, raw json.RawMessage) (Scene, error) {
	fields, err := object(raw, path)
	if err != nil {
		return Scene{}, err
	}
	for _, key := range []string{"id", "name", "type"} {
		if _, err := require(fields, path, key, "string"); err != nil {
			return Scene{}, err
		}
	}
	if _, err := require(fields, path, "children", "array"); err != nil {
		return Scene{}, err
	}

	var s Scene
	if err := json.Unmarshal(raw, &s); err != nil {
		return Scene{}, structural(path, "invalid scene", err)
	}
	return s, nil
}

func decodeNode(path string, raw json.RawMessage) (Node, error) {
	fields, err := object(raw, path)
	if err != nil {
		return nil, err
	}

	var typ string
	if err := requireString(fields, path, "type", &typ); err != nil {
		return nil, err
	}

	var n Node
	switch NodeType(typ) {
	case NodeTypeContainer:
		n = &ContainerNode{NodeHeader: defaultHeader()}
	case NodeTypeText:
		n = &TextNode{NodeHeader: defaultHeader(), FontWeight: 400}
	case NodeTypeVector:
		n = &VectorNode{NodeHeader: defaultHeader()}
	case NodeTypePath:
		n = &PathNode{NodeHeader: defaultHeader()}
	case NodeTypeEllipse:
		n = &EllipseNode{NodeHeader: defaultHeader()}
	case NodeTypeRectangle:
		n = &RectangleNode{NodeHeader: defaultHeader()}
	default:
		return decodeUnknown(fields, raw), nil
	}

	for _, key := range []string{"id", "name"} {
		if _, err := require(fields, path, key, "string"); err != nil {
			return nil, err
		}
	}
	if _, ok := n.(*ContainerNode); ok {
		if _, err := require(fields, path, "children", "array"); err != nil {
			return nil, err
		}
	}

	if err := json.Unmarshal(raw, n); err != nil {
		return nil, structural(path, "invalid "+typ+" node", err)
	}
	return n, nil
}

func decodeUnknown(fields map[string]json.RawMessage, raw json.RawMessage) *UnknownNode {
	n := &UnknownNode{NodeHeader: defaultHeader(), Raw: raw}
	_ = json.Unmarshal(fields["type"], &n.Type)
	if kindOf(fields["id"]) == "string" {
		_ = json.Unmarshal(fields["id"], &n.ID)
	}
	if kindOf(fields["name"]) == "string" {
		_ = json.Unmarshal(fields["name"], &n.Name)
	}
	return n
}

// object decodes raw as a JSON object keyed by field name.
func object(raw json.RawMessage, path string) (map[string]json.RawMessage, error) {
	if k := kindOf(raw); k != "object" {
		if k == "" {
			var probe any
			err := json.Unmarshal(raw, &probe)
			return nil, structural(path, "invalid JSON", err)
		}
		return nil, structural(path, "expected object, got "+k, nil)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, structural(path, "invalid JSON", err)
	}
	return m, nil
}

func require(fields map[string]json.RawMessage, path, key, kind string) (json.RawMessage, error) {
	where := key
	if path != "" {
		where = path + "." + key
	}
	raw, ok := fields[key]
	if !ok {
		return nil, structural(where, "missing required field", nil)
	}
	if got := kindOf(raw); got != kind {
		return nil, structural(where, fmt.Sprintf("expected %s, got %s", kind, got), nil)
	}
	return raw, nil
}

func requireString(fields map[string]json.RawMessage, path, key string, out *string) error {
	raw, err := require(fields, path, key, "string")
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// kindOf names the JSON type of raw from its first significant byte. It
// returns "" when raw does not start like any JSON value.
func kindOf(raw json.RawMessage) string {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return ""
	}
	switch c := raw[0]; {
	case c == '{':
		return "object"
	case c == '[':
		return "array"
	case c == '"':
		return "string"
	case c == 't' || c == 'f':
		return "boolean"
	case c == 'n':
		return "null"
	case c == '-' || (c >= '0' && c <= '9'):
		return "number"
	default:
		return ""
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
