// Package soa is the runtime support library for soagen-generated
// struct-of-arrays families.
//
// Generated code keeps one slice per struct field and delegates the
// generic, schema-independent pieces to this package:
//   - Range: the five slicing shapes with checked resolution
//   - Permutation: whole-structure reordering behind sort operations
//   - Zip: lockstep iteration over chosen field columns
//   - Container/View/MutView: interfaces mirroring the generated surface
//
// Key guarantees:
//   - Apply validates the permutation before the first swap
//   - Range.Resolve never returns bounds outside [0, n]
//   - Zip iterators stop at the first exhausted source
package soa
