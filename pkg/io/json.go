package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	errs "github.com/star-e/generator-sub002/pkg/errors"
	"github.com/star-e/generator-sub002/pkg/schema"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

// WriteJSON encodes g as an indented JSON snapshot and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *syntax.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON returns the JSON snapshot of g.
func MarshalJSON(g *syntax.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON writes a JSON snapshot of g to a file at path.
func ExportJSON(g *syntax.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// ReadJSON decodes a JSON snapshot from r and returns the frozen graph.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*syntax.Graph, error) {
	var doc document[json.RawMessage]
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode")
	}
	return toGraph(&doc, func(raw json.RawMessage, p schema.Payload) error {
		if len(raw) == 0 || string(raw) == "null" {
			return nil
		}
		return json.Unmarshal(raw, p)
	})
}

// ImportJSON reads a JSON snapshot file at path.
func ImportJSON(path string) (*syntax.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
