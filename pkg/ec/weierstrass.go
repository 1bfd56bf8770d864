package ec

import "github.com/smallyu/go-ecarith/pkg/ff"

// ShortWeierstrass holds the constants of y^2 = x^3 + a*x + b.
type ShortWeierstrass[E ff.Field[E]] interface {
	A() E
	B() E
}

// ShortWeierstrassJacobian implements the short Weierstrass law in Jacobian
// coordinates with separate addition and doubling formulas. The special
// cases of addition (an operand at infinity, equal operands, opposite
// operands) are computed alongside the generic formula and chosen with
// masked selects.
type ShortWeierstrassJacobian[E ff.Field[E], C ShortWeierstrass[E]] struct{}

func (ShortWeierstrassJacobian[E, C]) Unified() bool {
	return false
}

func (ShortWeierstrassJacobian[E, C]) Identity() Jacobian[E] {
	var f E
	return Jacobian[E]{X: f.Zero(), Y: f.One(), Z: f.Zero()}
}

func (ShortWeierstrassJacobian[E, C]) Neg(p Jacobian[E]) Jacobian[E] {
	return Jacobian[E]{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// Add uses add-2007-bl.
func (w ShortWeierstrassJacobian[E, C]) Add(p, q Jacobian[E]) Jacobian[E] {
	z1z1, z2z2 := p.Z.Square(), q.Z.Square()
	u1, u2 := p.X.Mul(z2z2), q.X.Mul(z1z1)
	s1 := p.Y.Mul(q.Z).Mul(z2z2)
	s2 := q.Y.Mul(p.Z).Mul(z1z1)
	h := u2.Sub(u1)
	i := h.Double().Square()
	j := h.Mul(i)
	dy := s2.Sub(s1)
	r := dy.Double()
	v := u1.Mul(i)
	x3 := r.Square().Sub(j).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Double())
	z3 := p.Z.Add(q.Z).Square().Sub(z1z1).Sub(z2z2).Mul(h)
	res := Jacobian[E]{X: x3, Y: y3, Z: z3}

	sameX, sameY := h.ZeroBit(), dy.ZeroBit()
	res = res.Select(w.Double(p), sameX&sameY)
	res = res.Select(w.Identity(), sameX&(1^sameY))
	res = res.Select(q, p.Z.ZeroBit())
	return res.Select(p, q.Z.ZeroBit())
}

// AddAffine uses madd-2007-bl.
func (w ShortWeierstrassJacobian[E, C]) AddAffine(p Jacobian[E], q Affine[E]) Jacobian[E] {
	z1z1 := p.Z.Square()
	u2 := q.X.Mul(z1z1)
	s2 := q.Y.Mul(p.Z).Mul(z1z1)
	h := u2.Sub(p.X)
	hh := h.Square()
	i := hh.Double().Double()
	j := h.Mul(i)
	dy := s2.Sub(p.Y)
	r := dy.Double()
	v := p.X.Mul(i)
	x3 := r.Square().Sub(j).Sub(v.Double())
	y3 := r.Mul(v.Sub(x3)).Sub(p.Y.Mul(j).Double())
	z3 := p.Z.Add(h).Square().Sub(z1z1).Sub(hh)
	res := Jacobian[E]{X: x3, Y: y3, Z: z3}

	sameX, sameY := h.ZeroBit(), dy.ZeroBit()
	res = res.Select(w.Double(p), sameX&sameY)
	res = res.Select(w.Identity(), sameX&(1^sameY))
	var lifted Jacobian[E]
	return res.Select(lifted.FromAffine(q), p.Z.ZeroBit())
}

// Double uses dbl-2007-bl. A point at infinity stays at infinity.
func (ShortWeierstrassJacobian[E, C]) Double(p Jacobian[E]) Jacobian[E] {
	var c C
	xx, yy, zz := p.X.Square(), p.Y.Square(), p.Z.Square()
	yyyy := yy.Square()
	s := p.X.Add(yy).Square().Sub(xx).Sub(yyyy).Double()
	m := xx.Double().Add(xx).Add(c.A().Mul(zz.Square()))
	t := m.Square().Sub(s.Double())
	y3 := m.Mul(s.Sub(t)).Sub(yyyy.Double().Double().Double())
	z3 := p.Y.Add(p.Z).Square().Sub(yy).Sub(zz)
	return Jacobian[E]{X: t, Y: y3, Z: z3}
}

// IsOnCurve checks y^2 = x^3 + a*x + b.
func (ShortWeierstrassJacobian[E, C]) IsOnCurve(a Affine[E]) bool {
	var c C
	rhs := a.X.Square().Add(c.A()).Mul(a.X).Add(c.B())
	return a.Y.Square().Equal(rhs)
}
