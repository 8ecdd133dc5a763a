package main

import (
	"encoding/json"
	"fmt"
)

// SnapshotIOError reports a snapshot file that is missing, unreadable, or
// failed mid-read.
type SnapshotIOError struct {
	Path string
	Err  error
}

func (e *SnapshotIOError) Error() string {
	return fmt.Sprintf("read snapshot %s: %v", e.Path, e.Err)
}

func (e *SnapshotIOError) Unwrap() error { return e.Err }

// SnapshotParseError reports snapshot text that is not valid JSON, lacks a
// required field, or carries a field of the wrong kind. Field is empty when
// the document itself could not be decoded, including a top-level value that
// is not an object.
type SnapshotParseError struct {
	Snapshot string
	Field    string
	Err      error
}

func (e *SnapshotParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parse %s snapshot: %v", e.Snapshot, e.Err)
	}
	return fmt.Sprintf("parse %s snapshot: field %q: %v", e.Snapshot, e.Field, e.Err)
}

func (e *SnapshotParseError) Unwrap() error { return e.Err }

type snapshotField struct {
	name string
	dst  any
}

// mismatchedField re-decodes each named member of raw into its target type
// and returns the first one that fails, or "" when raw is not a JSON object
// or every listed member decodes. The decoder's own mismatch errors do not
// carry the member name in a form stable across codecs.
func mismatchedField(raw []byte, fields []snapshotField) string {
	var members map[string]json.RawMessage
	if err := fastJSONUnmarshal(raw, &members); err != nil {
		return ""
	}
	for _, f := range fields {
		v, ok := members[f.name]
		if !ok {
			continue
		}
		if err := fastJSONUnmarshal(v, f.dst); err != nil {
			return f.name
		}
	}
	return ""
}
