package profiler

import "errors"

// Fatal errors returned by Profile and ProfileAll. Anything else that goes
// wrong with an optional artifact degrades the report instead of failing the
// run.
var (
	// ErrMissingBuildOutput means the circuit root has no build output
	// directory; the circuit was likely never compiled.
	ErrMissingBuildOutput = errors.New("build output directory not found")

	// ErrNoProofArtifact means the build output directory holds no proof
	// file for the requested circuit.
	ErrNoProofArtifact = errors.New("no proof artifact found")

	// ErrRequiredArtifactMissing means the proof or the public witness file
	// is absent from the resolved artifact set.
	ErrRequiredArtifactMissing = errors.New("required artifact missing")
)
