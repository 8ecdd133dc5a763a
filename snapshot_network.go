package main

import "time"

const chainTimestampLayout = "2006-01-02 15:04:05 UTC"

// ChainState is the network/stats snapshot reduced to what the report shows.
// Only Timestamp is guaranteed; the rest are zero when p2pool omits them.
type ChainState struct {
	Timestamp  time.Time
	Height     uint64
	Difficulty uint64
	Reward     uint64
	Hash       string
}

type networkSnapshotRequired struct {
	Timestamp *int64 `json:"timestamp"`
}

type networkSnapshotOptional struct {
	Height     uint64 `json:"height"`
	Difficulty uint64 `json:"difficulty"`
	Reward     uint64 `json:"reward"`
	Hash       string `json:"hash"`
}

func parseNetwork(raw []byte) (ChainState, error) {
	var req networkSnapshotRequired
	if err := fastJSONUnmarshal(raw, &req); err != nil {
		var ts int64
		field := mismatchedField(raw, []snapshotField{{"timestamp", &ts}})
		return ChainState{}, &SnapshotParseError{Snapshot: "network", Field: field, Err: err}
	}
	if req.Timestamp == nil {
		return ChainState{}, &SnapshotParseError{Snapshot: "network", Field: "timestamp", Err: errFieldMissing}
	}

	state := ChainState{Timestamp: time.Unix(*req.Timestamp, 0).UTC()}

	// Extra tip details are display sugar; a schema change there must not
	// take the page down.
	var opt networkSnapshotOptional
	if err := fastJSONUnmarshal(raw, &opt); err != nil {
		if debugEnabled() {
			logger.Debug("network snapshot optional fields skipped", "error", err)
		}
		return state, nil
	}
	state.Height = opt.Height
	state.Difficulty = opt.Difficulty
	state.Reward = opt.Reward
	state.Hash = opt.Hash
	return state, nil
}

func formatChainTimestamp(t time.Time) string {
	return t.UTC().Format(chainTimestampLayout)
}
