package ff

import (
	"io"

	"github.com/smallyu/go-ecarith/pkg/bigint"
)

// MontgomeryParameters are the constants of a Montgomery field with
// R = b^N for limb base b.
type MontgomeryParameters[L bigint.Limb, A bigint.Limbs[L]] interface {
	// Modulus must be odd.
	Modulus() bigint.Int[L, A]
	// MP is -Modulus^-1 mod b.
	MP() L
	// R is b^N mod Modulus.
	R() bigint.Int[L, A]
	// R2 is R^2 mod Modulus.
	R2() bigint.Int[L, A]
}

// Montgomery stores x as x*R mod p and multiplies with REDC.
type Montgomery[L bigint.Limb, A bigint.Limbs[L], P MontgomeryParameters[L, A]] struct{}

func (Montgomery[L, A, P]) Modulus() bigint.Int[L, A] {
	var p P
	return p.Modulus()
}

func (Montgomery[L, A, P]) Zero() bigint.Int[L, A] {
	return bigint.Int[L, A]{}
}

// One returns R mod p, the Montgomery form of 1.
func (Montgomery[L, A, P]) One() bigint.Int[L, A] {
	var p P
	return p.R()
}

func (Montgomery[L, A, P]) IsZero(x bigint.Int[L, A]) bool {
	return x.IsZero()
}

func (Montgomery[L, A, P]) ZeroBit(x bigint.Int[L, A]) int {
	return x.ZeroBit()
}

func (m Montgomery[L, A, P]) Equal(x, y bigint.Int[L, A]) bool {
	return EqualBySub(m, x, y)
}

// Reduction computes (lo + hi*b^N) / R mod p for inputs below p*R.
func (Montgomery[L, A, P]) Reduction(lo, hi bigint.Int[L, A]) bigint.Int[L, A] {
	var p P
	mod, mp := p.Modulus(), p.MP()
	ml, tl, th := mod.Limbs(), lo.Limbs(), hi.Limbs()
	n := mod.Len()

	var top L
	for i := 0; i < n; i++ {
		// t += u*p*b^i clears limb i.
		u := tl[i] * mp
		var c L
		for j := 0; j < n; j++ {
			l, h := bigint.MulCarry(u, ml[j], c)
			var cc L
			if k := i + j; k < n {
				tl[k], cc = bigint.AddCarry(tl[k], l, 0)
			} else {
				th[k-n], cc = bigint.AddCarry(th[k-n], l, 0)
			}
			c = h + cc
		}
		for k := i; k < n; k++ {
			th[k], c = bigint.AddCarry(th[k], c, 0)
		}
		top += c
	}

	var rest L
	for k := 0; k < n; k++ {
		rest |= tl[k]
	}
	if rest != 0 {
		panic("ff: montgomery reduction left a nonzero low half")
	}

	res := bigint.New[L](th)
	sub, borrow := res.SubBorrow(mod, 0)
	// The value is top*b^N + res < 2p; subtract p unless that borrows from
	// a value with no top bit.
	return bigint.Select(borrow^top^1, sub, res)
}

// MontMul returns a*b/R mod p.
func (m Montgomery[L, A, P]) MontMul(a, b bigint.Int[L, A]) bigint.Int[L, A] {
	return m.Reduction(a.MulWide(b, bigint.Int[L, A]{}))
}

// Reduce lifts x into the Montgomery domain.
func (m Montgomery[L, A, P]) Reduce(x bigint.Int[L, A]) bigint.Int[L, A] {
	var p P
	return m.MontMul(x, p.R2())
}

// AsInt leaves the Montgomery domain.
func (m Montgomery[L, A, P]) AsInt(x bigint.Int[L, A]) bigint.Int[L, A] {
	return m.MontMul(x, bigint.One[L, A]())
}

func (Montgomery[L, A, P]) Add(x, y bigint.Int[L, A]) bigint.Int[L, A] {
	var p P
	return addMod(x, y, p.Modulus())
}

func (Montgomery[L, A, P]) Sub(x, y bigint.Int[L, A]) bigint.Int[L, A] {
	var p P
	return subMod(x, y, p.Modulus())
}

func (m Montgomery[L, A, P]) Neg(x bigint.Int[L, A]) bigint.Int[L, A] {
	return NegBySub(m, x)
}

func (m Montgomery[L, A, P]) Mul(x, y bigint.Int[L, A]) bigint.Int[L, A] {
	return m.MontMul(x, y)
}

func (m Montgomery[L, A, P]) Square(x bigint.Int[L, A]) bigint.Int[L, A] {
	return SquareByMul(m, x)
}

func (m Montgomery[L, A, P]) Double(x bigint.Int[L, A]) bigint.Int[L, A] {
	return DoubleByAdd(m, x)
}

func (m Montgomery[L, A, P]) Inverse(x bigint.Int[L, A]) (bigint.Int[L, A], bool) {
	return FermatInverse(m, x)
}

func (m Montgomery[L, A, P]) Exp(x bigint.Int[L, A], e bigint.Integer) bigint.Int[L, A] {
	return LadderExp(m, x, e)
}

func (Montgomery[L, A, P]) Select(x, y bigint.Int[L, A], cond int) bigint.Int[L, A] {
	return bigint.Select(L(cond), y, x)
}

// Rand samples a residue and lifts it into the domain.
func (m Montgomery[L, A, P]) Rand(r io.Reader) (bigint.Int[L, A], error) {
	var p P
	v, err := sample(r, p.Modulus())
	if err != nil {
		return v, err
	}
	return m.Reduce(v), nil
}
