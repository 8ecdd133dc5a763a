//go:build nojsonsimd

package main

import "encoding/json"

// encoding/json also skips unknown object keys unless DisallowUnknownFields
// is set, so snapshot tolerance is the same under this tag.

func fastJSONMarshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func fastJSONUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
