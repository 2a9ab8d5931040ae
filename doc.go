// Package forval provides:
//
//   - Schema-driven, bidirectional conversion between typed Go values and the
//     generic JSON data model (Codec[T] with Decode/Encode)
//   - A structural error model (TypeMismatch/AtProperty/AtIndex/Message trees
//     collected in ErrorList, rendered as JSON Pointers)
//   - Record and tagged-union engines driven by declarative field/case lists
//     (see dsl/), including the ordered-fallback union decode contract
//   - Pluggable wire formats (wire/json, wire/yaml, wire/cbor, wire/msgpack)
//     behind the Wire interface, with a swappable process default
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed implementations
//     under internal/.
//   - Place the schema DSL under dsl/ and wire formats under wire/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	person := dsl.MustBind[Person](dsl.Record().
//		Field("name", dsl.StringOf[string]()).
//		Field("age", dsl.IntOf[int]().Optional()))
//
//	p, err := forval.Unmarshal(person, data)
//	out, err := forval.Marshal(person, p)
package forval
