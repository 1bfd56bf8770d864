package kat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVectors(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, f.Vectors)
	require.Len(t, f.Generators, 2)

	for _, r := range f.Run() {
		t.Run(r.Curve+"/"+r.Name, func(t *testing.T) {
			assert.NoError(t, r.Err)
		})
	}
}

func TestMismatch(t *testing.T) {
	v := Vector{Curve: "secp256k1", Scalar: "2", Point: "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"}
	var mismatch *MismatchError
	require.ErrorAs(t, v.Check(), &mismatch)
	assert.Equal(t, "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5", mismatch.Got)

	v.Scalar = "0x2"
	assert.ErrorIs(t, v.Check(), ErrBadScalar)

	v.Curve = "p256"
	assert.Error(t, v.Check())

	s := GeneratorSet{Curve: "edwards25519", Points: []string{"00"}}
	require.ErrorAs(t, s.Check(), &mismatch)
	assert.Equal(t, "generator 0", mismatch.What)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	data := []byte("vectors:\n  - curve: edwards25519\n    scalar: \"1\"\n    point: 5866666666666666666666666666666666666666666666666666666666666666\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Vectors, 1)
	assert.NoError(t, f.Vectors[0].Check())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("vectors: [unterminated"))
	assert.Error(t, err)
}
