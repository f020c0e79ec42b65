package profiler

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/zkfit/zkfit/logger"
)

// buildDirName is the build output subdirectory the toolchain writes
// artifacts to, relative to the circuit project root.
const buildDirName = "target"

const (
	proofExt          = ".proof"
	publicWitnessExt  = ".pub"
	privateWitnessExt = ".gz"
	definitionExt     = ".json"
	verifyingKeyExt   = ".vk"
)

// ArtifactSet identifies one circuit's build outputs by their shared base
// name. Paths are resolved, not validated: whether a file exists is the
// extractor's concern.
type ArtifactSet struct {
	Name string // circuit name, the proof file stem

	Proof          string
	PublicWitness  string
	PrivateWitness string
	Definition     string
	VerifyingKey   string
}

// locateArtifacts scans the build output directory under root for a proof
// file and derives the sibling artifact paths from its stem.
//
// An empty name auto-detects the circuit. When several proofs are present
// the lexicographically smallest stem wins, never the directory listing
// order, and the ambiguity is logged.
func locateArtifacts(root, dir, name string) (ArtifactSet, error) {
	log := logger.Logger()

	buildPath := filepath.Join(root, dir)
	stems, err := proofStems(buildPath)
	if err != nil {
		return ArtifactSet{}, err
	}

	if name == "" {
		name = stems[0]
		if len(stems) > 1 {
			log.Warn().Strs("candidates", stems).Str("picked", name).Msg("multiple proof artifacts in build directory")
		}
	} else if !slices.Contains(stems, name) {
		return ArtifactSet{}, fmt.Errorf("%w for circuit %q in %s", ErrNoProofArtifact, name, buildPath)
	}

	log.Debug().Str("circuit", name).Str("buildDir", buildPath).Msg("resolved artifact set")
	return newArtifactSet(buildPath, name), nil
}

// locateAllArtifacts resolves one artifact set per proof file in the build
// output directory, ordered by circuit name.
func locateAllArtifacts(root, dir string) ([]ArtifactSet, error) {
	buildPath := filepath.Join(root, dir)
	stems, err := proofStems(buildPath)
	if err != nil {
		return nil, err
	}

	sets := make([]ArtifactSet, len(stems))
	for i, stem := range stems {
		sets[i] = newArtifactSet(buildPath, stem)
	}
	return sets, nil
}

// proofStems lists the sorted circuit names with a proof file in buildPath.
func proofStems(buildPath string) ([]string, error) {
	if _, err := os.Stat(buildPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingBuildOutput, buildPath)
		}
		return nil, err
	}

	entries, err := os.ReadDir(buildPath)
	if err != nil {
		return nil, err
	}

	var stems []string
	for _, f := range entries {
		if f.IsDir() || filepath.Ext(f.Name()) != proofExt {
			continue
		}
		stems = append(stems, strings.TrimSuffix(f.Name(), proofExt))
	}
	if len(stems) == 0 {
		return nil, fmt.Errorf("%w in %s: run proving first to produce a %s file", ErrNoProofArtifact, buildPath, proofExt)
	}
	sort.Strings(stems)
	return stems, nil
}

func newArtifactSet(buildPath, name string) ArtifactSet {
	stem := filepath.Join(buildPath, name)
	return ArtifactSet{
		Name:           name,
		Proof:          stem + proofExt,
		PublicWitness:  stem + publicWitnessExt,
		PrivateWitness: stem + privateWitnessExt,
		Definition:     stem + definitionExt,
		VerifyingKey:   stem + verifyingKeyExt,
	}
}
