//go:build !nojsonsimd

package main

import "github.com/bytedance/sonic"

// ConfigStd keeps HTML escaping and sorted keys so /api/report output
// matches encoding/json byte for byte. Unknown snapshot fields are skipped
// in either mode.
var fastJSON = sonic.ConfigStd

func fastJSONMarshal(v interface{}) ([]byte, error) {
	return fastJSON.Marshal(v)
}

func fastJSONUnmarshal(data []byte, v interface{}) error {
	return fastJSON.Unmarshal(data, v)
}
