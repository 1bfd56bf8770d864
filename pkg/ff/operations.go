package ff

import (
	"io"

	"github.com/smallyu/go-ecarith/pkg/bigint"
)

// Repr is the constraint on the integer type a strategy stores.
type Repr interface {
	comparable
	bigint.Integer
}

// Operations is a field strategy: it fixes the modulus, the internal
// representation of residues and the algorithms acting on it. Strategies are
// zero-size types used only as type parameters.
//
// The *BySub, *ByMul, *ByAdd, LadderExp and FermatInverse helpers implement
// the operations that can be derived from the others, so a strategy only
// writes the parts it can do better.
type Operations[I Repr] interface {
	Modulus() I
	Zero() I
	One() I
	IsZero(x I) bool
	// ZeroBit is IsZero as 1 or 0, computed without branching.
	ZeroBit(x I) int
	Equal(x, y I) bool
	// Reduce maps an integer of the representation width into the internal
	// representation.
	Reduce(x I) I
	// AsInt maps the internal representation back to [0, Modulus).
	AsInt(x I) I
	Add(x, y I) I
	Sub(x, y I) I
	Neg(x I) I
	Mul(x, y I) I
	Square(x I) I
	Double(x I) I
	Inverse(x I) (I, bool)
	Exp(x I, e bigint.Integer) I
	// Select returns y when cond is 1 and x when cond is 0.
	Select(x, y I, cond int) I
	Rand(r io.Reader) (I, error)
}

// EqualBySub compares by subtracting and testing for zero.
func EqualBySub[I Repr, S Operations[I]](s S, x, y I) bool {
	return s.IsZero(s.Sub(x, y))
}

// NegBySub computes 0 - x.
func NegBySub[I Repr, S Operations[I]](s S, x I) I {
	return s.Sub(s.Zero(), x)
}

// SquareByMul computes x*x.
func SquareByMul[I Repr, S Operations[I]](s S, x I) I {
	return s.Mul(x, x)
}

// DoubleByAdd computes x+x.
func DoubleByAdd[I Repr, S Operations[I]](s S, x I) I {
	return s.Add(x, x)
}

// LadderExp computes x^e. Every exponent bit costs one multiplication and one
// squaring; the bit only decides which accumulator receives each result, and
// that choice is made with masked selects.
func LadderExp[I Repr, S Operations[I]](s S, x I, e bigint.Integer) I {
	res, base := s.One(), x
	for b := range e.BytesBE() {
		for j := 7; j >= 0; j-- {
			bit := int(b>>j) & 1
			prod := s.Mul(res, base)
			sq := s.Square(s.Select(res, base, bit))
			// bit 1: res = res*base, base = base^2
			// bit 0: base = res*base, res = res^2
			res, base = s.Select(sq, prod, bit), s.Select(prod, sq, bit)
		}
	}
	return res
}

// FermatInverse computes x^(p-2). It reports false exactly when x is zero.
func FermatInverse[I Repr, S Operations[I]](s S, x I) (I, bool) {
	two := s.Add(s.One(), s.One())
	pMinus2 := s.AsInt(s.Neg(two))
	return s.Exp(x, pMinus2), !s.IsZero(x)
}
