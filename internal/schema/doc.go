// Package schema provides the normalized record schema that every
// generator consumes.
//
// A RecordSchema is built once from the analyzed type graph plus the
// optional manifest and is immutable afterwards. It carries:
//   - the ordered field list with rendered Go type expressions
//   - the nested flag per field (from the `soa:"nested"` struct tag)
//   - per-variant annotation lines and derive selections
package schema
