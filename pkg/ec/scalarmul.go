package ec

import (
	"github.com/smallyu/go-ecarith/pkg/bigint"
	"github.com/smallyu/go-ecarith/pkg/ff"
)

// MontgomeryLadder returns e*base. Each bit of e costs one addition and one
// doubling; the bit only picks, through masked selects, which accumulator
// receives which result:
//
//	bit 1: res = res + base, base = 2*base
//	bit 0: base = base + res, res = 2*res
//
// The loop runs over every bit of e's encoding, so secret scalars should
// share one width.
func MontgomeryLadder[E ff.Field[E], P Coordinates[E, P], C CurveOperations[E, P]](c C, base P, e bigint.Integer) P {
	res := c.Identity()
	for b := range e.BytesBE() {
		for j := 7; j >= 0; j-- {
			bit := int(b>>j) & 1
			sum := c.Add(res, base)
			dbl := c.Double(res.Select(base, bit))
			res, base = dbl.Select(sum, bit), sum.Select(dbl, bit)
		}
	}
	return res
}

// MSMSimple returns the sum of scalars[i]*bases[i], one ladder per term. It
// panics if the slices differ in length.
func MSMSimple[E ff.Field[E], P Coordinates[E, P], C CurveOperations[E, P], I bigint.Integer](c C, bases []P, scalars []I) P {
	if len(bases) != len(scalars) {
		panic("ec: msm called with mismatched bases and scalars")
	}
	acc := c.Identity()
	for i := range bases {
		acc = c.Add(acc, MontgomeryLadder[E, P, C](c, bases[i], scalars[i]))
	}
	return acc
}
