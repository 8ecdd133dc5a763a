package main

import (
	"os"
	"path/filepath"
)

// Snapshot locations beneath the p2pool --data-api directory.
const (
	stratumSnapshotPath = "local/stratum"
	networkSnapshotPath = "network/stats"
)

// readSnapshot returns the full contents of rel beneath root. rel is always
// one of the fixed snapshot paths above, never request input.
func readSnapshot(root, rel string) ([]byte, error) {
	path := filepath.Join(root, filepath.FromSlash(rel))
	if debugEnabled() {
		logger.Debug("reading snapshot", "path", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SnapshotIOError{Path: path, Err: err}
	}
	return data, nil
}
