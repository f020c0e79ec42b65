// Package profiler implements the zkfit estimation engine.
//
// A profiling run is one synchronous pipeline over one circuit's compiled
// artifacts: locate the artifact set in the build output directory, extract
// size and count metrics, price the verification transaction and classify
// the result against Solana's limits. The engine performs local file reads
// only; it never talks to a node and never verifies a proof.
//
// Profile and ProfileAll are the only entry points. Runs are referentially
// transparent given the artifact files, so callers may run them
// concurrently.
package profiler

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/zkfit/zkfit/logger"
)

type config struct {
	buildDir     string
	circuitName  string
	lookupTables bool
}

func defaultConfig() config {
	return config{buildDir: buildDirName}
}

// Option configures a profiling run.
type Option func(*config) error

// WithLookupTables prices the transaction for address lookup table
// compression, which tightens the effective instruction data budget.
func WithLookupTables() Option {
	return func(c *config) error {
		c.lookupTables = true
		return nil
	}
}

// WithCircuitName pins the run to one circuit instead of auto-detecting the
// proof artifact. Use it when the build directory holds proofs for several
// circuits.
func WithCircuitName(name string) Option {
	return func(c *config) error {
		if name == "" {
			return errors.New("circuit name must not be empty")
		}
		c.circuitName = name
		return nil
	}
}

// WithBuildDir overrides the build output subdirectory looked up under the
// circuit root. Defaults to "target".
func WithBuildDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return errors.New("build directory must not be empty")
		}
		c.buildDir = dir
		return nil
	}
}

// Report is the profiling result for one circuit: a pure value, assembled
// once and never mutated. Two runs over identical artifacts produce
// identical reports.
//
// Optional fields are nil when the corresponding artifact was missing or
// unreadable, and marshal away under omitempty.
type Report struct {
	CircuitName string `json:"circuitName"`

	ProofSize         int `json:"proofSizeBytes"`
	PublicWitnessSize int `json:"publicWitnessSizeBytes"`
	InstructionData   int `json:"instructionDataBytes"`
	EffectiveLimit    int `json:"effectiveInstructionLimit"`

	PrivateWitnessSize    *int `json:"privateWitnessSizeBytes,omitempty"`
	PrivateWitnessRawSize *int `json:"privateWitnessRawSizeBytes,omitempty"`
	DefinitionSize        *int `json:"circuitDefinitionSizeBytes,omitempty"`
	VerifyingKeySize      *int `json:"verifyingKeySizeBytes,omitempty"`

	PublicInputs *int `json:"publicInputCount,omitempty"`
	Constraints  *int `json:"constraintCount,omitempty"`

	Cost    CostEstimate `json:"cost"`
	RentSOL *float64     `json:"vkRentEstimateSOL,omitempty"`

	FitsInTx bool     `json:"fitsInSolanaTx"`
	Status   Status   `json:"status"`
	Warnings []string `json:"warnings,omitempty"`
}

// Profile runs the estimation pipeline over the circuit project rooted at
// circuitDir and returns the assembled report.
//
// It fails with ErrMissingBuildOutput, ErrNoProofArtifact or
// ErrRequiredArtifactMissing when the inputs it cannot do without are
// absent. Optional artifacts degrade the report instead of failing it.
func Profile(circuitDir string, opts ...Option) (*Report, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	set, err := locateArtifacts(circuitDir, cfg.buildDir, cfg.circuitName)
	if err != nil {
		return nil, err
	}

	return profile(set, cfg)
}

// ProfileAll profiles every circuit with a proof artifact in the build
// directory. Runs are independent and execute concurrently; reports come
// back ordered by circuit name. A fatal error in any run fails the whole
// call.
func ProfileAll(circuitDir string, opts ...Option) ([]*Report, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	var sets []ArtifactSet
	if cfg.circuitName != "" {
		set, err := locateArtifacts(circuitDir, cfg.buildDir, cfg.circuitName)
		if err != nil {
			return nil, err
		}
		sets = []ArtifactSet{set}
	} else {
		sets, err = locateAllArtifacts(circuitDir, cfg.buildDir)
		if err != nil {
			return nil, err
		}
	}

	reports := make([]*Report, len(sets))
	var g errgroup.Group
	for i, set := range sets {
		g.Go(func() error {
			r, err := profile(set, cfg)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func newConfig(opts ...Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, fmt.Errorf("apply option: %w", err)
		}
	}
	return cfg, nil
}

// profile is the pipeline body: extract, model, classify, assemble. Only the
// extractor can fail; from there on the report always comes together.
func profile(set ArtifactSet, cfg config) (*Report, error) {
	m, err := extract(set)
	if err != nil {
		return nil, err
	}

	cost := estimateCost(m)
	v := classify(m, cost, cfg.lookupTables)

	r := &Report{
		CircuitName:       set.Name,
		ProofSize:         m.ProofSize,
		PublicWitnessSize: m.PublicWitnessSize,
		InstructionData:   v.instructionData,
		EffectiveLimit:    v.limit,

		PrivateWitnessSize:    m.PrivateWitnessSize,
		PrivateWitnessRawSize: m.PrivateWitnessRawSize,
		DefinitionSize:        m.DefinitionSize,
		VerifyingKeySize:      m.VerifyingKeySize,

		PublicInputs: m.PublicInputs,
		Constraints:  m.Constraints,

		Cost:    cost,
		RentSOL: estimateRent(m.VerifyingKeySize),

		FitsInTx: v.fits,
		Status:   v.status,
		Warnings: v.warnings,
	}

	log := logger.Logger()
	log.Info().
		Str("circuit", set.Name).
		Int("instructionData", v.instructionData).
		Uint64("computeUnits", cost.ComputeUnits).
		Stringer("status", v.status).
		Msg("profiled circuit")

	return r, nil
}
