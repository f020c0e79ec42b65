package profiler

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArtifactSet(t *testing.T) (ArtifactSet, string) {
	t.Helper()
	_, build := newBuildDir(t)
	return newArtifactSet(build, "mul"), build
}

func TestExtractRequiredArtifacts(t *testing.T) {
	set, build := testArtifactSet(t)

	_, err := extract(set)
	require.ErrorIs(t, err, ErrRequiredArtifactMissing)
	assert.Contains(t, err.Error(), "mul.proof")

	writeArtifact(t, build, "mul.proof", make([]byte, 300))
	_, err = extract(set)
	require.ErrorIs(t, err, ErrRequiredArtifactMissing)
	assert.Contains(t, err.Error(), "mul.pub")

	writeArtifact(t, build, "mul.pub", make([]byte, 200))
	m, err := extract(set)
	require.NoError(t, err)
	assert.Equal(t, 300, m.ProofSize)
	assert.Equal(t, 200, m.PublicWitnessSize)
}

func TestExtractPublicInputCount(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{0, 0}, // an empty witness is zero inputs, not an unknown count
		{31, 0},
		{32, 1},
		{33, 1}, // trailing partial element is discarded
		{200, 6},
		{320, 10},
	}
	for _, tc := range cases {
		set, build := testArtifactSet(t)
		writeArtifact(t, build, "mul.proof", []byte{1})
		writeArtifact(t, build, "mul.pub", make([]byte, tc.size))

		m, err := extract(set)
		require.NoError(t, err)
		require.NotNil(t, m.PublicInputs)
		assert.Equal(t, tc.want, *m.PublicInputs, "witness of %d bytes", tc.size)
	}
}

func TestExtractOptionalArtifactsAbsent(t *testing.T) {
	set, build := testArtifactSet(t)
	writeArtifact(t, build, "mul.proof", []byte{1})
	writeArtifact(t, build, "mul.pub", nil)

	m, err := extract(set)
	require.NoError(t, err)
	assert.Nil(t, m.PrivateWitnessSize)
	assert.Nil(t, m.PrivateWitnessRawSize)
	assert.Nil(t, m.DefinitionSize)
	assert.Nil(t, m.VerifyingKeySize)
	assert.Nil(t, m.Constraints)
}

func TestExtractConstraintCount(t *testing.T) {
	cases := []struct {
		name string
		def  string
		want *int // nil means unknown
	}{
		{"list", `{"constraints":[{"op":"mul"},{"op":"add"},{"op":"eq"}]}`, intPtr(3)},
		{"empty list", `{"constraints":[]}`, intPtr(0)},
		{"missing field", `{"abi":{"parameters":[]}}`, nil},
		{"null field", `{"constraints":null}`, nil},
		{"truncated", `{"constraints":[`, nil},
		{"not json", "\x00\x01binary", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set, build := testArtifactSet(t)
			writeArtifact(t, build, "mul.proof", []byte{1})
			writeArtifact(t, build, "mul.pub", nil)
			writeArtifact(t, build, "mul.json", []byte(tc.def))

			m, err := extract(set)
			require.NoError(t, err)

			// the file size survives even when the parse does not
			require.NotNil(t, m.DefinitionSize)
			assert.Equal(t, len(tc.def), *m.DefinitionSize)

			if tc.want == nil {
				assert.Nil(t, m.Constraints)
			} else {
				require.NotNil(t, m.Constraints)
				assert.Equal(t, *tc.want, *m.Constraints)
			}
		})
	}
}

func TestExtractPrivateWitness(t *testing.T) {
	set, build := testArtifactSet(t)
	writeArtifact(t, build, "mul.proof", []byte{1})
	writeArtifact(t, build, "mul.pub", nil)

	raw := make([]byte, 4096)
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(raw)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	writeArtifact(t, build, "mul.gz", buf.Bytes())

	m, err := extract(set)
	require.NoError(t, err)
	require.NotNil(t, m.PrivateWitnessSize)
	assert.Equal(t, buf.Len(), *m.PrivateWitnessSize)
	require.NotNil(t, m.PrivateWitnessRawSize)
	assert.Equal(t, len(raw), *m.PrivateWitnessRawSize)
}

func TestExtractPrivateWitnessNotGzip(t *testing.T) {
	set, build := testArtifactSet(t)
	writeArtifact(t, build, "mul.proof", []byte{1})
	writeArtifact(t, build, "mul.pub", nil)
	writeArtifact(t, build, "mul.gz", []byte("not a gzip stream"))

	m, err := extract(set)
	require.NoError(t, err)
	require.NotNil(t, m.PrivateWitnessSize)
	assert.Nil(t, m.PrivateWitnessRawSize)
}

func TestExtractVerifyingKeySize(t *testing.T) {
	set, build := testArtifactSet(t)
	writeArtifact(t, build, "mul.proof", []byte{1})
	writeArtifact(t, build, "mul.pub", nil)
	writeArtifact(t, build, "mul.vk", make([]byte, 1536))

	m, err := extract(set)
	require.NoError(t, err)
	require.NotNil(t, m.VerifyingKeySize)
	assert.Equal(t, 1536, *m.VerifyingKeySize)
}
