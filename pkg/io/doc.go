// Package io provides snapshot import and export for schema graphs.
//
// # Overview
//
// A snapshot records everything a [syntax.Graph] holds so a compiled schema
// can be cached, diffed or handed to another tool without re-reading the
// manifests. Vertex ids, edge ids and enumeration order survive a round
// trip, so generated output stays byte-for-byte stable.
//
// Two encodings share one document shape:
//
//   - JSON ([WriteJSON], [ReadJSON], [ExportJSON], [ImportJSON]) for
//     inspection and interoperability
//   - MessagePack ([WriteMsgpack], [ReadMsgpack]) for compact caches
//
// # Document Format
//
//	{
//	  "module": "render",
//	  "vertices": [
//	    {"id": 0, "name": "render", "kind": "Namespace", "path": "/render", "payload": {}},
//	    {"id": 1, "name": "Node", "kind": "Struct", "path": "/render/Node", "payload": {}},
//	    {"id": 2, "name": "mFlags", "kind": "Member", "path": "/render/Node/mFlags",
//	     "payload": {"typePath": "Flags", "public": true}}
//	  ],
//	  "ownerships": [{"id": 0, "from": 0, "to": 1}, {"id": 1, "from": 1, "to": 2}],
//	  "references": []
//	}
//
// Vertices and edges must be listed in id order starting at zero. The
// payload object carries the kind-specific fields of [schema.Payload].
//
// # Import
//
// Reading rebuilds the graph through its normal write surface, validates it
// and returns it frozen. Malformed input fails with INVALID_FORMAT; store
// violations (dangling edges, duplicate paths) keep their own codes.
//
// # Concurrency
//
// Writers only read the graph and are safe to run concurrently over a frozen
// graph.
package io
