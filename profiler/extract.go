package profiler

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zkfit/zkfit/logger"
)

// fieldElementSize is the serialized size of one BN254 scalar field element.
// The public witness file is a flat array of such elements.
const fieldElementSize = fr.Bytes

// Metrics holds the numeric facts extracted from an artifact set.
//
// Optional fields are nil when their source file is missing or does not
// parse. They stay nil until the cost model, which is the only place absent
// counts may collapse to zero.
type Metrics struct {
	ProofSize         int
	PublicWitnessSize int

	PrivateWitnessSize    *int
	PrivateWitnessRawSize *int // uncompressed size of the gzipped private witness
	DefinitionSize        *int
	VerifyingKeySize      *int

	PublicInputs *int
	Constraints  *int
}

// extract reads the artifact files once each and derives the metrics. The
// proof and the public witness are required; every other artifact degrades
// to nil when missing or malformed.
func extract(set ArtifactSet) (Metrics, error) {
	var m Metrics

	size, err := requiredSize(set.Proof)
	if err != nil {
		return Metrics{}, err
	}
	m.ProofSize = size

	size, err = requiredSize(set.PublicWitness)
	if err != nil {
		return Metrics{}, err
	}
	m.PublicWitnessSize = size
	m.PublicInputs = intPtr(size / fieldElementSize)

	m.PrivateWitnessSize = optionalSize(set.PrivateWitness)
	if m.PrivateWitnessSize != nil {
		m.PrivateWitnessRawSize = gunzippedSize(set.PrivateWitness)
	}

	if data, err := os.ReadFile(set.Definition); err == nil {
		m.DefinitionSize = intPtr(len(data))
		m.Constraints = constraintCount(data, set.Definition)
	}

	m.VerifyingKeySize = optionalSize(set.VerifyingKey)

	return m, nil
}

// acirDocument is the subset of the circuit definition JSON the profiler
// reads: the declared constraint list.
type acirDocument struct {
	Constraints []json.RawMessage `json:"constraints"`
}

// constraintCount returns the length of the constraint list declared in a
// circuit definition. A document that does not parse, or parses without a
// constraint list, yields nil: a malformed definition must not abort the
// profiling run.
//
// Note that an explicitly empty list is a present count of zero, which is
// not the same thing as no list at all.
func constraintCount(data []byte, path string) *int {
	var doc acirDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		log := logger.Logger()
		log.Debug().Err(err).Str("path", path).Msg("skipping malformed circuit definition")
		return nil
	}
	if doc.Constraints == nil {
		return nil
	}
	return intPtr(len(doc.Constraints))
}

// gunzippedSize returns the decompressed length of a gzipped witness file,
// nil if the file does not decompress.
func gunzippedSize(path string) *int {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	r, err := gzip.NewReader(f)
	if err != nil {
		return nil
	}
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return nil
	}
	if err := r.Close(); err != nil {
		return nil
	}
	return intPtr(int(n))
}

func requiredSize(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrRequiredArtifactMissing, filepath.Base(path))
		}
		return 0, err
	}
	return int(info.Size()), nil
}

func optionalSize(path string) *int {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	return intPtr(int(info.Size()))
}

func intPtr(v int) *int {
	return &v
}
