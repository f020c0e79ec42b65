package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/zkfit/zkfit/profiler"
)

// render prints one report as a console panel: sizes and circuit
// characteristics, the priority fee table, then warnings and the verdict.
func render(r *profiler.Report) {
	pterm.DefaultSection.Printfln("circuit %s", r.CircuitName)

	rows := pterm.TableData{
		{"proof", byteCount(r.ProofSize)},
		{"public witness", byteCount(r.PublicWitnessSize)},
		{"instruction data", fmt.Sprintf("%s of %s", byteCount(r.InstructionData), byteCount(r.EffectiveLimit))},
	}
	rows = appendOptional(rows, "private witness", r.PrivateWitnessSize, byteCount)
	rows = appendOptional(rows, "private witness (raw)", r.PrivateWitnessRawSize, byteCount)
	rows = appendOptional(rows, "circuit definition", r.DefinitionSize, byteCount)
	rows = appendOptional(rows, "verifying key", r.VerifyingKeySize, byteCount)
	rows = appendOptional(rows, "public inputs", r.PublicInputs, strconv.Itoa)
	rows = appendOptional(rows, "constraints", r.Constraints, strconv.Itoa)
	rows = append(rows, []string{"compute units", strconv.FormatUint(r.Cost.ComputeUnits, 10)})
	if r.RentSOL != nil {
		rows = append(rows, []string{"vk rent", fmt.Sprintf("%.4f SOL", *r.RentSOL)})
	}
	_ = pterm.DefaultTable.WithData(rows).Render()

	fees := pterm.TableData{{"tier", "rate (µlam/CU)", "fee (SOL)"}}
	for _, q := range r.Cost.Fees {
		fees = append(fees, []string{q.Tier, strconv.FormatUint(q.Rate, 10), fmt.Sprintf("%.6f", q.SOL)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(fees).Render()

	for _, w := range r.Warnings {
		pterm.Warning.Println(w)
	}

	switch r.Status {
	case profiler.StatusPass:
		pterm.Success.Printfln("PASS: %s fits in one Solana transaction", r.CircuitName)
	case profiler.StatusWarn:
		pterm.Warning.Printfln("WARN: %s fits, with caveats", r.CircuitName)
	case profiler.StatusFail:
		pterm.Error.Printfln("FAIL: %s does not fit in one Solana transaction", r.CircuitName)
	}
}

// renderJSON emits reports for machine consumers: one object for a single
// run, an array for --all.
func renderJSON(w io.Writer, reports []*profiler.Report, asArray bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if asArray {
		return enc.Encode(reports)
	}
	return enc.Encode(reports[0])
}

func appendOptional[T any](rows pterm.TableData, label string, v *T, format func(T) string) pterm.TableData {
	if v == nil {
		return rows
	}
	return append(rows, []string{label, format(*v)})
}

func byteCount(n int) string {
	return strconv.Itoa(n) + " B"
}
