// Package schema defines the closed set of declaration kinds a schema graph
// can hold, the capability taxonomy that classifies them, and the per-kind
// payload data carried by each vertex.
//
// # Kinds
//
// [Kind] enumerates every declaration the engine understands: namespaces,
// aliases, values and enums, structs and their members, variants, template
// parameters, template instances, graph declarations and polymorphic
// components. The zero value [KindInvalid] never appears on a vertex.
//
// # Capabilities
//
// A [Capability] is a semantic property shared across kinds. The five tags
// refine each other:
//
//	Data        implies Identifier
//	Composition implies Data
//	Template    implies Identifier
//
// The classification is a fixed table built once when the package is
// initialized; [Kind.Capabilities] and [Kind.Is] are constant-time lookups.
//
// # Payloads
//
// [Payload] is a sealed union with one pointer type per kind. Consumers
// dispatch with a type switch:
//
//	switch p := v.Payload.(type) {
//	case *schema.Struct:
//	    ...
//	case *schema.Member:
//	    fmt.Println(p.TypePath)
//	}
package schema
