package ff

import (
	"io"

	"github.com/smallyu/go-ecarith/pkg/bigint"
)

// GeneralReduction reduces double-width products for fields that keep
// residues in canonical form.
type GeneralReduction[L bigint.Limb, A bigint.Limbs[L]] interface {
	Modulus() bigint.Int[L, A]
	// Reduction returns (lo + hi*b^N) mod Modulus.
	Reduction(lo, hi bigint.Int[L, A]) bigint.Int[L, A]
}

// GeneralReductionOperations stores residues as canonical integers and
// delegates reduction to P.
type GeneralReductionOperations[L bigint.Limb, A bigint.Limbs[L], P GeneralReduction[L, A]] struct{}

func (GeneralReductionOperations[L, A, P]) Modulus() bigint.Int[L, A] {
	var p P
	return p.Modulus()
}

func (GeneralReductionOperations[L, A, P]) Zero() bigint.Int[L, A] {
	return bigint.Int[L, A]{}
}

func (GeneralReductionOperations[L, A, P]) One() bigint.Int[L, A] {
	return bigint.One[L, A]()
}

func (GeneralReductionOperations[L, A, P]) IsZero(x bigint.Int[L, A]) bool {
	return x.IsZero()
}

func (GeneralReductionOperations[L, A, P]) ZeroBit(x bigint.Int[L, A]) int {
	return x.ZeroBit()
}

func (g GeneralReductionOperations[L, A, P]) Equal(x, y bigint.Int[L, A]) bool {
	return EqualBySub(g, x, y)
}

func (GeneralReductionOperations[L, A, P]) Reduce(x bigint.Int[L, A]) bigint.Int[L, A] {
	var p P
	return p.Reduction(x, bigint.Int[L, A]{})
}

func (GeneralReductionOperations[L, A, P]) AsInt(x bigint.Int[L, A]) bigint.Int[L, A] {
	return x
}

func (GeneralReductionOperations[L, A, P]) Add(x, y bigint.Int[L, A]) bigint.Int[L, A] {
	var p P
	return addMod(x, y, p.Modulus())
}

func (GeneralReductionOperations[L, A, P]) Sub(x, y bigint.Int[L, A]) bigint.Int[L, A] {
	var p P
	return subMod(x, y, p.Modulus())
}

func (g GeneralReductionOperations[L, A, P]) Neg(x bigint.Int[L, A]) bigint.Int[L, A] {
	return NegBySub(g, x)
}

func (GeneralReductionOperations[L, A, P]) Mul(x, y bigint.Int[L, A]) bigint.Int[L, A] {
	var p P
	return p.Reduction(x.MulWide(y, bigint.Int[L, A]{}))
}

func (g GeneralReductionOperations[L, A, P]) Square(x bigint.Int[L, A]) bigint.Int[L, A] {
	return SquareByMul(g, x)
}

func (g GeneralReductionOperations[L, A, P]) Double(x bigint.Int[L, A]) bigint.Int[L, A] {
	return DoubleByAdd(g, x)
}

func (g GeneralReductionOperations[L, A, P]) Inverse(x bigint.Int[L, A]) (bigint.Int[L, A], bool) {
	return FermatInverse(g, x)
}

func (g GeneralReductionOperations[L, A, P]) Exp(x bigint.Int[L, A], e bigint.Integer) bigint.Int[L, A] {
	return LadderExp(g, x, e)
}

func (GeneralReductionOperations[L, A, P]) Select(x, y bigint.Int[L, A], cond int) bigint.Int[L, A] {
	return bigint.Select(L(cond), y, x)
}

func (g GeneralReductionOperations[L, A, P]) Rand(r io.Reader) (bigint.Int[L, A], error) {
	var p P
	v, err := sample(r, p.Modulus())
	if err != nil {
		return v, err
	}
	return g.Reduce(v), nil
}

// SolinasParameters describe a pseudo-Mersenne prime p = b^N - C.
type SolinasParameters[L bigint.Limb, A bigint.Limbs[L]] interface {
	Modulus() bigint.Int[L, A]
	// C must satisfy C^2 + C <= b^N.
	C() L
}

// Solinas reduces modulo p = b^N - C using b^N = C mod p.
type Solinas[L bigint.Limb, A bigint.Limbs[L], P SolinasParameters[L, A]] struct{}

// solinasFolds folds of lo + C*hi empty the high half whenever C^2 + C <= b^N.
const solinasFolds = 3

func (Solinas[L, A, P]) Modulus() bigint.Int[L, A] {
	var p P
	return p.Modulus()
}

// Reduction folds the high half into the low half a fixed number of times,
// then subtracts p*2^k for k = LeadingZeros(p) down to 0 wherever that does
// not borrow. The amount of work depends on the modulus only.
func (Solinas[L, A, P]) Reduction(lo, hi bigint.Int[L, A]) bigint.Int[L, A] {
	var p P
	c := bigint.Int[L, A]{}.SetLimb(0, p.C())
	for i := 0; i < solinasFolds; i++ {
		lo, hi = hi.MulWide(c, lo)
	}
	if !hi.IsZero() {
		panic("ff: solinas reduction did not clear the high half")
	}

	mod := p.Modulus()
	for k := mod.LeadingZeros(); k >= 0; k-- {
		diff, borrow := lo.SubBorrow(mod.Shl(k), 0)
		lo = bigint.Select(borrow^1, diff, lo)
	}
	return lo
}
