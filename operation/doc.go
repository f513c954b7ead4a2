// Package operation defines the interactive operations applied to the
// tree and hash-map structures: insert, delete, search and modify.
//
// Trees are keyed by integers and take a KeyOp. The Go-style map stores
// string pairs and takes an EntryOp. Both can be decoded from loosely typed
// payloads (JSON bodies, YAML scripts, CLI flags) with DecodeKeyOp and
// DecodeEntryOp.
package operation
