//go:build !nojsonsimd

package main

import (
	"reflect"

	"github.com/bytedance/sonic"
)

func init() {
	// Compile the snapshot decoders up front so the first page load after
	// start does not pay sonic's codegen cost. Failure only costs latency.
	_ = sonic.Pretouch(reflect.TypeOf(stratumSnapshot{}))
	_ = sonic.Pretouch(reflect.TypeOf(networkSnapshotRequired{}))
	_ = sonic.Pretouch(reflect.TypeOf(networkSnapshotOptional{}))
	_ = sonic.Pretouch(reflect.TypeOf(reportJSON{}))
}
