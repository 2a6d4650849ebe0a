// Package gen renders record schemas into Go source files.
//
// One file is generated per record type, containing the whole family:
// the owning container, both views, both proxies, both raw handles and
// both iterators, plus any derives requested in the manifest. Output
// is gofmt-formatted; on a formatting failure the raw text is kept in
// a sidecar file for inspection.
package gen
