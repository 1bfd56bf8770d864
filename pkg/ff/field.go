// Package ff implements prime field arithmetic over fixed-width integers.
//
// A field is a pair of types: an integer representation from package bigint
// and a zero-size strategy type implementing Operations, which decides how
// values are stored (Montgomery form or canonical residues) and reduced.
// Element binds the two and exposes the Field interfaces.
package ff

import (
	"io"

	"github.com/smallyu/go-ecarith/pkg/bigint"
)

// Ring is the arithmetic every field element type provides.
type Ring[E any] interface {
	Zero() E
	One() E
	IsZero() bool
	// ZeroBit returns 1 for zero and 0 otherwise, without branching.
	ZeroBit() int
	Equal(E) bool
	Add(E) E
	Sub(E) E
	Mul(E) E
	Neg() E
	Square() E
	Double() E
	// Pow uses a fixed 64-step square-and-multiply that branches on the
	// exponent bits. Use it for public exponents only.
	Pow(uint64) E
	// Exp runs a ladder over every bit of the exponent's encoding. Secret
	// exponents passed here should share one bit length.
	Exp(bigint.Integer) E
	// Select returns the argument when cond is 1 and the receiver when cond
	// is 0, without branching.
	Select(E, int) E
	String() string
}

// Field adds division and sampling to Ring.
type Field[E any] interface {
	Ring[E]
	// Div panics when the divisor is zero.
	Div(E) E
	// Inverse reports false exactly when the receiver is zero.
	Inverse() (E, bool)
	Rand(io.Reader) (E, error)
}

// PrimeField is a Field of integers modulo a prime.
type PrimeField[E any, I bigint.Integer] interface {
	Field[E]
	Modulus() I
	// AsInt returns the canonical integer in [0, Modulus).
	AsInt() I
	// FromInt maps any integer of the representation width into the field.
	FromInt(I) E
	// Bytes returns the big-endian encoding of AsInt.
	Bytes() []byte
}

// Sum folds xs with Add.
func Sum[E Ring[E]](xs ...E) E {
	var z E
	acc := z.Zero()
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// Product folds xs with Mul.
func Product[E Ring[E]](xs ...E) E {
	var z E
	acc := z.One()
	for _, x := range xs {
		acc = acc.Mul(x)
	}
	return acc
}
