package ec

import "github.com/smallyu/go-ecarith/pkg/ff"

// TwistedEdwardsAM1 holds the constant of -x^2 + y^2 = 1 + d*x^2*y^2.
type TwistedEdwardsAM1[E ff.Field[E]] interface {
	D() E
	// D2 is 2*d.
	D2() E
}

// EdwardsAM1Unified implements the Hisil-Wong-Carter-Dawson unified
// formulas for a = -1 in extended coordinates. Doubling is an addition of a
// point to itself.
type EdwardsAM1Unified[E ff.Field[E], C TwistedEdwardsAM1[E]] struct{}

func (EdwardsAM1Unified[E, C]) Unified() bool {
	return true
}

// Identity returns (0, 1) as (0 : 1 : 0 : 1).
func (EdwardsAM1Unified[E, C]) Identity() Extended[E] {
	var f E
	return Extended[E]{X: f.Zero(), Y: f.One(), T: f.Zero(), Z: f.One()}
}

func (EdwardsAM1Unified[E, C]) Neg(p Extended[E]) Extended[E] {
	return Extended[E]{X: p.X.Neg(), Y: p.Y, T: p.T.Neg(), Z: p.Z}
}

// Add uses add-2008-hwcd-3.
func (EdwardsAM1Unified[E, C]) Add(p, q Extended[E]) Extended[E] {
	var c C
	a := p.Y.Sub(p.X).Mul(q.Y.Sub(q.X))
	b := p.Y.Add(p.X).Mul(q.Y.Add(q.X))
	cc := p.T.Mul(c.D2()).Mul(q.T)
	d := p.Z.Mul(q.Z).Double()
	return hwcdFinish(a, b, cc, d)
}

// AddAffine uses madd-2008-hwcd-3 with Z2 = 1 and T2 = x2*y2.
func (EdwardsAM1Unified[E, C]) AddAffine(p Extended[E], q Affine[E]) Extended[E] {
	var c C
	a := p.Y.Sub(p.X).Mul(q.Y.Sub(q.X))
	b := p.Y.Add(p.X).Mul(q.Y.Add(q.X))
	cc := p.T.Mul(c.D2()).Mul(q.X.Mul(q.Y))
	d := p.Z.Double()
	return hwcdFinish(a, b, cc, d)
}

func (e EdwardsAM1Unified[E, C]) Double(p Extended[E]) Extended[E] {
	return e.Add(p, p)
}

// IsOnCurve checks -x^2 + y^2 = 1 + d*x^2*y^2.
func (EdwardsAM1Unified[E, C]) IsOnCurve(a Affine[E]) bool {
	var c C
	xx, yy := a.X.Square(), a.Y.Square()
	lhs := yy.Sub(xx)
	rhs := xx.Mul(yy).Mul(c.D()).Add(xx.One())
	return lhs.Equal(rhs)
}

func hwcdFinish[E ff.Field[E]](a, b, c, d E) Extended[E] {
	e, f, g, h := b.Sub(a), d.Sub(c), d.Add(c), b.Add(a)
	return Extended[E]{X: e.Mul(f), Y: g.Mul(h), T: e.Mul(h), Z: f.Mul(g)}
}
