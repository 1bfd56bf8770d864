package ec

import "github.com/smallyu/go-ecarith/pkg/ff"

// ShortWeierstrassA0 holds the constant of y^2 = x^3 + b.
type ShortWeierstrassA0[E ff.Field[E]] interface {
	B() E
	// B3 is 3*b.
	B3() E
}

// ShortWeierstrassCompleteA0 implements the complete projective formulas of
// Renes, Costello and Batina (2016, algorithm 7) for curves with a = 0. One
// formula serves every input pair, so Unified reports true.
type ShortWeierstrassCompleteA0[E ff.Field[E], C ShortWeierstrassA0[E]] struct{}

func (ShortWeierstrassCompleteA0[E, C]) Unified() bool {
	return true
}

// Identity returns (0 : 1 : 0).
func (ShortWeierstrassCompleteA0[E, C]) Identity() Projective[E] {
	var f E
	return Projective[E]{X: f.Zero(), Y: f.One(), Z: f.Zero()}
}

func (ShortWeierstrassCompleteA0[E, C]) Neg(p Projective[E]) Projective[E] {
	return Projective[E]{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

func (ShortWeierstrassCompleteA0[E, C]) Add(p, q Projective[E]) Projective[E] {
	var c C
	b3 := c.B3()
	xx, yy, zz := p.X.Mul(q.X), p.Y.Mul(q.Y), p.Z.Mul(q.Z)
	xy := p.X.Add(p.Y).Mul(q.X.Add(q.Y)).Sub(xx.Add(yy))
	yz := p.Y.Add(p.Z).Mul(q.Y.Add(q.Z)).Sub(yy.Add(zz))
	xz := p.X.Add(p.Z).Mul(q.X.Add(q.Z)).Sub(xx.Add(zz))

	bzz := b3.Mul(zz)
	yyMinus, yyPlus := yy.Sub(bzz), yy.Add(bzz)
	bxz := b3.Mul(xz)
	xx3 := xx.Double().Add(xx)

	return Projective[E]{
		X: xy.Mul(yyMinus).Sub(bxz.Mul(yz)),
		Y: yyPlus.Mul(yyMinus).Add(xx3.Mul(bxz)),
		Z: yz.Mul(yyPlus).Add(xy.Mul(xx3)),
	}
}

func (w ShortWeierstrassCompleteA0[E, C]) AddAffine(p Projective[E], q Affine[E]) Projective[E] {
	var lifted Projective[E]
	return w.Add(p, lifted.FromAffine(q))
}

func (w ShortWeierstrassCompleteA0[E, C]) Double(p Projective[E]) Projective[E] {
	return w.Add(p, p)
}

// IsOnCurve checks y^2 = x^3 + b.
func (ShortWeierstrassCompleteA0[E, C]) IsOnCurve(a Affine[E]) bool {
	var c C
	return a.Y.Square().Equal(a.X.Square().Mul(a.X).Add(c.B()))
}
