// Package zkfit estimates whether a zero-knowledge proof can be verified on
// Solana within the transaction-size and compute-budget limits, and what it
// will cost to land.
//
// zkfit consumes compiled circuit artifacts from disk and produces a
// profiling report with byte sizes, estimated compute units, tiered
// priority-fee quotes, a storage-rent estimate and a PASS/WARN/FAIL verdict.
//
// The estimation engine lives in the profiler package; the zkfit binary in
// cmd/zkfit is a thin console front-end over it.
package zkfit

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.2.0")
