// Package curves exposes the concrete groups behind interfaces that can be
// picked at runtime by name.
package curves

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"math/big"
	"slices"
)

// ErrUnknownCurve is returned by ByName.
var ErrUnknownCurve = errors.New("curves: unknown curve")

// Curve is a prime order group together with its scalar field.
type Curve interface {
	// Name returns the name of the curve.
	Name() string

	// Order returns the order of the base point (group order).
	Order() *big.Int

	// NewScalar samples a uniform scalar from rng.
	NewScalar(rng io.Reader) (Scalar, error)

	// NewScalarFromBigInt reduces n modulo the group order.
	NewScalarFromBigInt(n *big.Int) Scalar

	// NewScalarFromBytes parses the canonical scalar encoding.
	NewScalarFromBytes(b []byte) (Scalar, error)

	// NewPointFromBytes deserializes a point.
	NewPointFromBytes(b []byte) (Point, error)

	// BasePoint returns the generator point G.
	BasePoint() Point

	// Generators returns n points with unknown mutual discrete logarithms.
	Generators(n int, rng io.Reader) ([]Point, error)
}

// Point is an element of a Curve.
type Point interface {
	// Bytes returns the canonical serialization of the point.
	Bytes() []byte

	// Add adds this point to another point of the same curve.
	Add(p Point) Point

	// ScalarMult multiplies this point by a scalar.
	ScalarMult(s Scalar) Point

	Equal(p Point) bool
	String() string
}

// Scalar is an element of a curve's scalar field.
type Scalar interface {
	// Bytes returns the serialization of the scalar.
	Bytes() []byte

	// BigInt returns the scalar as a big integer.
	BigInt() *big.Int

	Add(s Scalar) Scalar
	Mul(s Scalar) Scalar

	// Invert returns the modular inverse of the scalar, or zero for zero.
	Invert() Scalar
}

var registry = map[string]Curve{
	Ed25519Curve{}.Name():   Ed25519Curve{},
	Secp256k1Curve{}.Name(): Secp256k1Curve{},
}

// ByName returns the curve registered under name.
func ByName(name string) (Curve, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownCurve, name, Names())
	}
	return c, nil
}

// Names lists the registered curves in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

func mismatch(want string, got any) string {
	return fmt.Sprintf("curves: expected %s, got %T", want, got)
}
