// Package kat loads and checks known-answer vectors for the registered
// curves.
package kat

import (
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smallyu/go-ecarith/pkg/curves"
)

//go:embed vectors.yaml
var defaultVectors []byte

// ErrBadScalar is returned by Vector.Check when Scalar is not a decimal
// integer.
var ErrBadScalar = errors.New("kat: malformed scalar")

// Vector states that Scalar*G encodes to Point.
type Vector struct {
	Curve string `yaml:"curve"`
	// Scalar is a decimal integer.
	Scalar string `yaml:"scalar"`
	// Point is the hex of the curve's canonical encoding.
	Point string `yaml:"point"`
}

// GeneratorSet lists the first hash-derived generators of a curve.
type GeneratorSet struct {
	Curve  string   `yaml:"curve"`
	Points []string `yaml:"points"`
}

// File is the layout of a vector file.
type File struct {
	Vectors    []Vector       `yaml:"vectors"`
	Generators []GeneratorSet `yaml:"generators"`
}

// MismatchError reports a computed encoding that differs from the vector.
type MismatchError struct {
	Curve string
	What  string
	Want  string
	Got   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("kat: %s %s: want %s, got %s", e.Curve, e.What, e.Want, e.Got)
}

// Default returns the vectors compiled into the binary.
func Default() (*File, error) {
	return Parse(defaultVectors)
}

// Load reads a vector file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kat: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML vector file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("kat: parse vectors: %w", err)
	}
	return &f, nil
}

// Check recomputes v.
func (v Vector) Check() error {
	c, err := curves.ByName(v.Curve)
	if err != nil {
		return err
	}
	k, ok := new(big.Int).SetString(v.Scalar, 10)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadScalar, v.Scalar)
	}
	got := hex.EncodeToString(c.BasePoint().ScalarMult(c.NewScalarFromBigInt(k)).Bytes())
	if got != v.Point {
		return &MismatchError{Curve: v.Curve, What: "scalar " + v.Scalar, Want: v.Point, Got: got}
	}
	return nil
}

// Check recomputes the generators of s without a seed.
func (s GeneratorSet) Check() error {
	c, err := curves.ByName(s.Curve)
	if err != nil {
		return err
	}
	gens, err := c.Generators(len(s.Points), nil)
	if err != nil {
		return err
	}
	for i, g := range gens {
		if got := hex.EncodeToString(g.Bytes()); got != s.Points[i] {
			return &MismatchError{Curve: s.Curve, What: fmt.Sprintf("generator %d", i), Want: s.Points[i], Got: got}
		}
	}
	return nil
}

// Result is the outcome of one check.
type Result struct {
	Curve string
	Name  string
	Err   error
}

// Run checks every vector and generator set in f.
func (f *File) Run() []Result {
	results := make([]Result, 0, len(f.Vectors)+len(f.Generators))
	for _, v := range f.Vectors {
		results = append(results, Result{Curve: v.Curve, Name: "mul " + v.Scalar, Err: v.Check()})
	}
	for _, s := range f.Generators {
		results = append(results, Result{Curve: s.Curve, Name: "generators", Err: s.Check()})
	}
	return results
}
