package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Samples captured from a p2pool --data-api directory.
const (
	sampleStratumJSON = `{
		"hashrate_15m": 10505,
		"hashrate_1h": 13794,
		"hashrate_24h": 24049,
		"total_hashes": 6021562332,
		"shares_found": 18,
		"shares_failed": 1,
		"average_effort": 122.298,
		"current_effort": 108.724,
		"connections": 2,
		"incoming_connections": 1
	}`
	sampleNetworkJSON = `{
		"difficulty": 326180875193,
		"hash": "5cc9cc40404608a866c16f4114a396355b82f8148c4285a21cd0937e8b84e776",
		"height": 2870723,
		"reward": 605959900000,
		"timestamp": 1682270152
	}`
)

// writeSnapshot places contents at root/rel, creating parent directories.
func writeSnapshot(t *testing.T, root, rel, contents string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func newSnapshotDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeSnapshot(t, root, stratumSnapshotPath, sampleStratumJSON)
	writeSnapshot(t, root, networkSnapshotPath, sampleNetworkJSON)
	return root
}
