// Package dsl provides the schema DSL for forval: scalar codecs
// (Bool/Int/Number/String/Char), composites (Array/Map and the
// Optional/Nullable adapters), and the two generic traversal engines:
// records over ordered field lists and tagged unions over ordered case
// lists.
//
// Field and case lists are declared once through builders and erased into
// AnyCodec values:
//
//	shape := dsl.Union().
//		Case("circle", dsl.Of(dsl.Record().
//			Field("radius", dsl.NumberOf[float64]()).
//			MustBuild())).
//		Case("rect", dsl.Of(dsl.Record().
//			Field("w", dsl.NumberOf[float64]()).
//			Field("h", dsl.NumberOf[float64]()).
//			MustBuild())).
//		MustBuild()
//
// Records decode to map[string]any; Bind[T] projects them onto a struct
// via forval/json tags when a typed surface is preferred.
//
// Decode semantics worth knowing:
//   - record and array decodes short-circuit at the first failure and wrap
//     it with the property name or index;
//   - map decodes abort with the failing entry's error unwrapped (the key
//     is deliberately not part of the path);
//   - union decodes try cases strictly in declaration order and fall
//     through on ANY failure, including a payload failure after the tag
//     matched; only the terminal "Unable to match any variant member."
//     survives total failure.
package dsl
