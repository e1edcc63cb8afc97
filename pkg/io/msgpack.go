package io

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	errs "github.com/star-e/generator-sub002/pkg/errors"
	"github.com/star-e/generator-sub002/pkg/schema"
	"github.com/star-e/generator-sub002/pkg/syntax"
)

// structTag makes MessagePack field names match the JSON snapshot.
const structTag = "json"

// WriteMsgpack encodes g as a MessagePack snapshot and writes it to w.
func WriteMsgpack(g *syntax.Graph, w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag(structTag)
	if err := enc.Encode(fromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalMsgpack returns the MessagePack snapshot of g.
func MarshalMsgpack(g *syntax.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteMsgpack(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadMsgpack decodes a MessagePack snapshot from r and returns the frozen
// graph.
func ReadMsgpack(r io.Reader) (*syntax.Graph, error) {
	var doc document[msgpack.RawMessage]
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag(structTag)
	if err := dec.Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode")
	}
	return toGraph(&doc, func(raw msgpack.RawMessage, p schema.Payload) error {
		if len(raw) == 0 {
			return nil
		}
		d := msgpack.NewDecoder(bytes.NewReader(raw))
		d.SetCustomStructTag(structTag)
		return d.Decode(p)
	})
}
