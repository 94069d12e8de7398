// Package kintree round-trips opaque recursive entities through a
// schema-validating model layer and a compact binary wire encoding.
//
// It provides:
//
//   - Type-safe validation and transformation based on Schema/Codec
//     (Parse/Validate/Decode/Encode)
//   - A stable error model via Issues (JSON Pointer, code, message)
//   - A bridge codec that lets an opaque tree type (person.Person)
//     participate in schema dump/validate as a first-class field
//   - Pluggable binary wire drivers (MessagePack by default, CBOR, JSON)
//     over the generic value vocabulary
//
// Design policy:
//   - Keep only public APIs in the root package; put detailed implementations
//     under internal/.
//   - Place the DSL under dsl/, codecs under codec/, wire drivers under wire/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	p := person.Generate(3, 2, person.WithSeed(42))
//	dump, err := model.DumpOuter(ctx, model.Outer{Inner: model.Inner{Person: p}})
//	b, err := wire.Encode(dump)
//	v, err := wire.Decode(b)
//	out, err := model.ParseOuter(ctx, v)
package kintree
