// Package dotmap provides dot-path access to plain nested mappings and a
// composable schema engine for validating the values found there.
//
// A path is a dot-delimited string such as "server.http.port". Paths are
// split into segments by a bounded, process-wide cache and resolved against
// map[string]any trees — the shape produced by decoding JSON or YAML into
// an untyped target. There is no escape syntax: a key containing a literal
// '.' cannot be addressed.
//
// The accessor operations come in two layers:
//
//   - Package functions (Get, Has, Set, Delete, Merge, Paths) operate on a
//     root mapping passed per call, sharing the global segment cache.
//   - A Map binds one root plus default options (immutable writes, a
//     private segment cache) and adds Update, typed getters, and the
//     validation entry points.
//
// Writes auto-vivify: Set creates missing intermediate mappings and
// replaces non-mapping intermediates on the way down. Deletes are
// conservative and never create structure. Every write accepts an
// immutable mode that applies the change to a deep clone and returns it,
// leaving the input untouched.
//
// The schema engine is a closed family of composable validators:
//
//	schema := dotmap.Object(map[string]dotmap.Schema{
//		"name": dotmap.String().Min(1),
//		"age":  dotmap.Number().Min(0).Int(),
//	})
//	result := schema.Validate(value)
//
// Each variant supports the shared modifiers Optional, Nullable, Default
// and Transform. Modifiers copy the receiver, so a base schema can be
// shared and specialized independently. Validation accumulates every
// violated constraint rather than stopping at the first, and collection
// schemas qualify nested issue paths with the containing key or [index],
// so one Result locates every failure from the root. Parse is the single
// fatal boundary: it joins all issues into one error.
package dotmap
