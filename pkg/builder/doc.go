// Package builder turns declarative schema manifests into frozen syntax graphs.
//
// A manifest lists declarations as a tree. Each declaration becomes a vertex
// owned by its enclosing declaration and addressable at the path formed by
// the enclosing names:
//
//	module = "render"
//
//	[[decls]]
//	kind = "namespace"
//	name = "render"
//
//	  [[decls.children]]
//	  kind = "struct"
//	  name = "Node"
//
//	    [[decls.children.children]]
//	    kind = "member"
//	    name = "mFlags"
//	    type = "Flags"
//
// Manifests are read from TOML or YAML ([ReadFile] picks the decoder from the
// file extension). After all declarations exist, the [Builder] links them:
//
//   - type names carried by payloads (member types, alias targets, variant
//     alternatives, template parameters) are resolved from the declaring
//     scope outwards and become reference edges; names that resolve nowhere
//     are builtin types and are skipped
//   - "references" adds explicit reference edges and must resolve
//   - "owners" adds further ownership edges, making the declaration
//     multiply owned; its path stays under the enclosing declaration
//
// [Builder.Compile] validates the ownership forest, reports ambiguous parents
// as warnings and freezes the graph.
package builder
