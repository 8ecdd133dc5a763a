package main

import "errors"

var errFieldMissing = errors.New("missing required field")

// PoolMetrics is one point-in-time sample of the local stratum snapshot.
// Hashrates are raw H/s.
type PoolMetrics struct {
	Hashrate15m         float64
	Hashrate1h          float64
	Hashrate24h         float64
	SharesFound         uint64
	SharesFailed        uint64
	Connections         uint64
	IncomingConnections uint64
}

// stratumSnapshot mirrors the fields we need from local/stratum. Pointers
// separate "absent" from zero. p2pool writes more fields (total_hashes,
// efforts, wallet...) which the decoder skips.
type stratumSnapshot struct {
	Hashrate15m         *float64 `json:"hashrate_15m"`
	Hashrate1h          *float64 `json:"hashrate_1h"`
	Hashrate24h         *float64 `json:"hashrate_24h"`
	SharesFound         *uint64  `json:"shares_found"`
	SharesFailed        *uint64  `json:"shares_failed"`
	Connections         *uint64  `json:"connections"`
	IncomingConnections *uint64  `json:"incoming_connections"`
}

func stratumFields() []snapshotField {
	var f float64
	var n uint64
	return []snapshotField{
		{"hashrate_15m", &f},
		{"hashrate_1h", &f},
		{"hashrate_24h", &f},
		{"shares_found", &n},
		{"shares_failed", &n},
		{"connections", &n},
		{"incoming_connections", &n},
	}
}

func parseStratum(raw []byte) (PoolMetrics, error) {
	var snap stratumSnapshot
	if err := fastJSONUnmarshal(raw, &snap); err != nil {
		return PoolMetrics{}, &SnapshotParseError{Snapshot: "stratum", Field: mismatchedField(raw, stratumFields()), Err: err}
	}

	required := []struct {
		name    string
		present bool
	}{
		{"hashrate_15m", snap.Hashrate15m != nil},
		{"hashrate_1h", snap.Hashrate1h != nil},
		{"hashrate_24h", snap.Hashrate24h != nil},
		{"shares_found", snap.SharesFound != nil},
		{"shares_failed", snap.SharesFailed != nil},
		{"connections", snap.Connections != nil},
		{"incoming_connections", snap.IncomingConnections != nil},
	}
	for _, f := range required {
		if !f.present {
			return PoolMetrics{}, &SnapshotParseError{Snapshot: "stratum", Field: f.name, Err: errFieldMissing}
		}
	}

	// incoming_connections > connections is accepted as-is; older p2pool
	// builds have been seen reporting it transiently.
	return PoolMetrics{
		Hashrate15m:         *snap.Hashrate15m,
		Hashrate1h:          *snap.Hashrate1h,
		Hashrate24h:         *snap.Hashrate24h,
		SharesFound:         *snap.SharesFound,
		SharesFailed:        *snap.SharesFailed,
		Connections:         *snap.Connections,
		IncomingConnections: *snap.IncomingConnections,
	}, nil
}
