// Package manifest loads the optional YAML file that attaches
// annotations and derives to generated types.
//
// The manifest is keyed by record type name, then by variant key
// (vec, slice, slice_mut, ref, ref_mut, ptr, ptr_mut, iter, iter_mut).
// Annotation lines are copied verbatim above the variant's type
// declaration, so they must be comment or directive lines.
package manifest
