package ec

import (
	"io"

	"github.com/smallyu/go-ecarith/pkg/bigint"
	"github.com/smallyu/go-ecarith/pkg/ff"
)

// PrimeSubGroupConfig describes a prime order subgroup of a curve.
type PrimeSubGroupConfig[E ff.Field[E], P Coordinates[E, P]] interface {
	CurveOperations[E, P]
	Cofactor() uint64
	// Generator returns a generator of the subgroup.
	Generator() Affine[E]
	// BatchGenerators returns n subgroup elements whose mutual discrete
	// logarithms are unknown. A nil rng selects a fixed derivation.
	BatchGenerators(n int, rng io.Reader) ([]Affine[E], error)
}

// SubGroup lifts a PrimeSubGroupConfig C into a PrimeGroupConfig whose
// public representation is Affine[E]. S is the scalar field; its order must
// be the subgroup order. SubGroup has no state.
type SubGroup[
	E interface {
		ff.Field[E]
		comparable
	},
	P Coordinates[E, P],
	S ff.PrimeField[S, SI],
	SI bigint.Integer,
	C PrimeSubGroupConfig[E, P],
] struct{}

func (SubGroup[E, P, S, SI, C]) Identity() P {
	var c C
	return c.Identity()
}

func (SubGroup[E, P, S, SI, C]) Neg(p P) P {
	var c C
	return c.Neg(p)
}

func (SubGroup[E, P, S, SI, C]) Add(p, q P) P {
	var c C
	return c.Add(p, q)
}

func (SubGroup[E, P, S, SI, C]) Double(p P) P {
	var c C
	return c.Double(p)
}

func (SubGroup[E, P, S, SI, C]) Equal(p, q P) bool {
	return p.Equal(q)
}

func (SubGroup[E, P, S, SI, C]) Generator() Affine[E] {
	var c C
	return c.Generator()
}

// Rand returns k*G for a uniformly random nonzero-image scalar k.
func (g SubGroup[E, P, S, SI, C]) Rand(rng io.Reader) (Affine[E], error) {
	var s S
	for {
		k, err := s.Rand(rng)
		if err != nil {
			return Affine[E]{}, err
		}
		if u, ok := g.ToPublic(g.ScalarMulPublic(g.Generator(), k)); ok {
			return u, nil
		}
	}
}

// IsValid checks that u*(order-1) + u is the identity, that is, that the
// order of u divides the subgroup order.
func (g SubGroup[E, P, S, SI, C]) IsValid(u Affine[E]) bool {
	var s S
	p := g.FromPublic(u)
	return g.Add(g.ScalarMul(p, s.One().Neg()), p).Equal(g.Identity())
}

func (SubGroup[E, P, S, SI, C]) ToPublic(p P) (Affine[E], bool) {
	return p.ToAffine()
}

func (SubGroup[E, P, S, SI, C]) FromPublic(u Affine[E]) P {
	var p P
	return p.FromAffine(u)
}

func (SubGroup[E, P, S, SI, C]) AddPublic(p P, u Affine[E]) P {
	var c C
	return c.AddAffine(p, u)
}

func (SubGroup[E, P, S, SI, C]) BatchGenerators(n int, rng io.Reader) ([]Affine[E], error) {
	var c C
	return c.BatchGenerators(n, rng)
}

func (SubGroup[E, P, S, SI, C]) MulInt(p P, e bigint.Integer) P {
	var c C
	return MontgomeryLadder[E, P, C](c, p, e)
}

func (SubGroup[E, P, S, SI, C]) ScalarMul(p P, s S) P {
	var c C
	return MontgomeryLadder[E, P, C](c, p, s.AsInt())
}

func (g SubGroup[E, P, S, SI, C]) ScalarMulPublic(u Affine[E], s S) P {
	return g.ScalarMul(g.FromPublic(u), s)
}

func (SubGroup[E, P, S, SI, C]) MSM(bases []P, scalars []S) P {
	var c C
	ints := make([]SI, len(scalars))
	for i, s := range scalars {
		ints[i] = s.AsInt()
	}
	return MSMSimple[E, P, C, SI](c, bases, ints)
}

func (g SubGroup[E, P, S, SI, C]) MSMPublic(bases []Affine[E], scalars []S) P {
	points := make([]P, len(bases))
	for i, u := range bases {
		points[i] = g.FromPublic(u)
	}
	return g.MSM(points, scalars)
}
