package profiler

import "fmt"

// TxSizeLimit is the hard ceiling on a serialized Solana transaction,
// derived from the IPv6 MTU. Instruction data past this point cannot be
// submitted in one transaction no matter how the accounts are packed.
const TxSizeLimit = 1232

// Effective instruction data budgets. They leave room for the account
// metadata, signatures and the compute budget instruction that share the
// transaction, with and without address lookup table compression.
const (
	instructionBudget    = 900
	instructionBudgetALT = 750
)

const (
	maxRecommendedInputs = 8
	highComputeCU        = 900_000
)

// Status is the overall verdict of a profiling run.
type Status uint8

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// String returns the string representation of a verdict
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText makes a Status marshal as its name in JSON reports.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// verdict is the classifier output, merged verbatim into the report.
type verdict struct {
	instructionData int
	limit           int
	fits            bool
	warnings        []string
	status          Status
}

// classify applies the fixed thresholds to the extracted metrics and cost
// estimate. Warning order is part of the contract: budget, hard limit,
// input count, compute. The conditions are independent; none suppresses
// another.
func classify(m Metrics, cost CostEstimate, lookupTables bool) verdict {
	v := verdict{
		instructionData: m.ProofSize + m.PublicWitnessSize,
		limit:           instructionBudget,
	}
	if lookupTables {
		v.limit = instructionBudgetALT
	}

	if v.instructionData > v.limit {
		if lookupTables {
			v.warnings = append(v.warnings, fmt.Sprintf(
				"instruction data (%d bytes) exceeds the %d byte budget available with address lookup tables", v.instructionData, v.limit))
		} else {
			v.warnings = append(v.warnings, fmt.Sprintf(
				"instruction data (%d bytes) exceeds the %d byte single-transaction budget", v.instructionData, v.limit))
		}
	}
	if v.instructionData > TxSizeLimit {
		v.warnings = append(v.warnings, fmt.Sprintf(
			"instruction data (%d bytes) exceeds the %d byte transaction size limit: the proof cannot be verified in one transaction", v.instructionData, TxSizeLimit))
	}
	if m.PublicInputs != nil && *m.PublicInputs > maxRecommendedInputs {
		v.warnings = append(v.warnings, fmt.Sprintf(
			"circuit exposes %d public inputs: hash or pack them to cut instruction data and compute", *m.PublicInputs))
	}
	if cost.ComputeUnits > highComputeCU {
		v.warnings = append(v.warnings, fmt.Sprintf(
			"estimated %d compute units exceeds %d: the transaction will need a raised compute budget and priority fees", cost.ComputeUnits, highComputeCU))
	}

	// fits answers the hard-ceiling question only, independent of the softer
	// budget above.
	v.fits = v.instructionData <= TxSizeLimit

	switch {
	case v.instructionData > TxSizeLimit:
		v.status = StatusFail
	case len(v.warnings) > 0:
		v.status = StatusWarn
	default:
		v.status = StatusPass
	}

	return v
}
