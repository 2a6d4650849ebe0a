// Package diagnostic provides structured warnings and errors for
// schema building and manifest validation.
//
// Key capabilities:
//   - Nested-field misuse errors (non-struct or unrequested families)
//   - Unknown variant / derive names in the manifest
//   - Empty-schema and unsupported-field reports
package diagnostic
