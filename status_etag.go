package main

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	sha256 "github.com/minio/sha256-simd"
)

// reportETag is a weak validator over the data a report page is rendered
// from. TimestampAge is left out because it advances every second while the
// snapshots stay put; generation moves whenever the templates are reloaded.
func reportETag(rep Report, generation uint64) (string, error) {
	view := rep.toJSON()
	view.TimestampAge = ""
	payload, err := fastJSONMarshal(view)
	if err != nil {
		return "", err
	}
	var gen [8]byte
	binary.BigEndian.PutUint64(gen[:], generation)
	h := sha256.New()
	h.Write(gen[:])
	h.Write(payload)
	sum := h.Sum(nil)
	return `W/"` + hex.EncodeToString(sum[:16]) + `"`, nil
}

// etagMatches implements the weak If-None-Match comparison.
func etagMatches(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" || etag == "" {
		return false
	}
	if header == "*" {
		return true
	}
	opaque := strings.TrimPrefix(etag, "W/")
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimPrefix(strings.TrimSpace(part), "W/")
		if part == opaque {
			return true
		}
	}
	return false
}
