package profiler

import "math"

// Compute unit model for the on-chain verifier: a fixed base cost for the
// pairing check, a linear term per public input and a stepped term per 10k
// constraints. The constraint term is floored to whole buckets: a circuit
// with 10_001 constraints pays for one bucket.
const (
	baseVerifyCU       = 150_000
	perInputCU         = 12_000
	per10kConstraintCU = 20_000
	constraintBucket   = 10_000
)

const (
	microLamportsPerLamport = 1_000_000
	lamportsPerSOL          = 1_000_000_000

	// rentPerKBSOL approximates the one-time rent-exempt deposit per
	// kilobyte of account data.
	rentPerKBSOL = 0.007

	feeDecimals  = 6
	rentDecimals = 4
)

// feeTier is one row of the priority fee table.
type feeTier struct {
	name string
	rate uint64 // micro-lamports per compute unit
}

// feeTiers is ordered from cheapest to most aggressive. Adding a tier here
// is enough; the quote loop never references tiers by name.
var feeTiers = []feeTier{
	{name: "low", rate: 200},
	{name: "medium", rate: 800},
	{name: "high", rate: 2500},
}

// FeeQuote prices one priority tier for the whole verification transaction.
type FeeQuote struct {
	Tier string  `json:"tier"`
	Rate uint64  `json:"microLamportsPerCU"`
	SOL  float64 `json:"feeSOL"`
}

// CostEstimate is the cost model output: predicted compute units and one
// quote per priority tier, in tier table order.
type CostEstimate struct {
	ComputeUnits uint64     `json:"computeUnits"`
	Fees         []FeeQuote `json:"priorityFees"`
}

// estimateCost maps extracted metrics to a cost estimate. This is the single
// place where absent counts collapse to zero: a circuit with no declared
// public inputs genuinely contributes nothing to the input term.
func estimateCost(m Metrics) CostEstimate {
	var inputs, constraints int
	if m.PublicInputs != nil {
		inputs = *m.PublicInputs
	}
	if m.Constraints != nil {
		constraints = *m.Constraints
	}

	cu := predictComputeUnits(inputs, constraints)
	return CostEstimate{
		ComputeUnits: cu,
		Fees:         quoteFees(cu),
	}
}

func predictComputeUnits(publicInputs, constraints int) uint64 {
	return baseVerifyCU +
		uint64(publicInputs)*perInputCU +
		uint64(constraints/constraintBucket)*per10kConstraintCU
}

// quoteFees prices every tier of the fee table for the given compute load.
// Fees convert micro-lamports to lamports to SOL and round to feeDecimals.
func quoteFees(totalCU uint64) []FeeQuote {
	quotes := make([]FeeQuote, len(feeTiers))
	for i, t := range feeTiers {
		micro := float64(totalCU * t.rate)
		quotes[i] = FeeQuote{
			Tier: t.name,
			Rate: t.rate,
			SOL:  roundTo(micro/microLamportsPerLamport/lamportsPerSOL, feeDecimals),
		}
	}
	return quotes
}

// estimateRent prices the one-time rent-exempt deposit for persisting the
// verifying key in an on-chain account. No key on disk means no estimate,
// not a free one.
func estimateRent(vkSize *int) *float64 {
	if vkSize == nil {
		return nil
	}
	rent := roundTo(float64(*vkSize)/1024*rentPerKBSOL, rentDecimals)
	return &rent
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
