// Package ec implements elliptic curve groups on top of package ff.
//
// Curve laws are zero-size types implementing CurveOperations for one point
// representation. A PrimeSubGroupConfig adds the subgroup data (generator,
// cofactor, scalar field) and SubGroup lifts it to a PrimeGroupConfig, which
// GroupEC and PublicEC wrap into values with methods.
package ec

import (
	"fmt"

	"github.com/smallyu/go-ecarith/pkg/ff"
)

// Coordinates is implemented by every point representation P over the
// coordinate field E.
type Coordinates[E ff.Field[E], P any] interface {
	// FromAffine embeds an affine point.
	FromAffine(Affine[E]) P
	// ToAffine normalizes the point. It reports false when the point has a
	// zero denominator, which is how the point at infinity shows up in
	// representations without an affine encoding for it.
	ToAffine() (Affine[E], bool)
	// Equal compares projectively.
	Equal(P) bool
	// Select returns the argument when cond is 1 and the receiver when cond
	// is 0.
	Select(P, int) P
	String() string
}

// Affine is a point (X, Y).
type Affine[E ff.Field[E]] struct {
	X, Y E
}

func (Affine[E]) FromAffine(a Affine[E]) Affine[E] {
	return a
}

func (a Affine[E]) ToAffine() (Affine[E], bool) {
	return a, true
}

func (a Affine[E]) Equal(b Affine[E]) bool {
	x, y := a.X.Equal(b.X), a.Y.Equal(b.Y)
	return x && y
}

func (a Affine[E]) Select(b Affine[E], cond int) Affine[E] {
	return Affine[E]{X: a.X.Select(b.X, cond), Y: a.Y.Select(b.Y, cond)}
}

func (a Affine[E]) String() string {
	return fmt.Sprintf("(%s, %s)", a.X, a.Y)
}

// Projective is the point (X/Z, Y/Z). The point at infinity is (0 : 1 : 0).
type Projective[E ff.Field[E]] struct {
	X, Y, Z E
}

func (Projective[E]) FromAffine(a Affine[E]) Projective[E] {
	return Projective[E]{X: a.X, Y: a.Y, Z: a.X.One()}
}

func (p Projective[E]) ToAffine() (Affine[E], bool) {
	zinv, ok := p.Z.Inverse()
	if !ok {
		return Affine[E]{}, false
	}
	return Affine[E]{X: p.X.Mul(zinv), Y: p.Y.Mul(zinv)}, true
}

func (p Projective[E]) Equal(q Projective[E]) bool {
	x := p.X.Mul(q.Z).Equal(q.X.Mul(p.Z))
	y := p.Y.Mul(q.Z).Equal(q.Y.Mul(p.Z))
	return x && y
}

func (p Projective[E]) Select(q Projective[E], cond int) Projective[E] {
	return Projective[E]{X: p.X.Select(q.X, cond), Y: p.Y.Select(q.Y, cond), Z: p.Z.Select(q.Z, cond)}
}

func (p Projective[E]) String() string {
	return fmt.Sprintf("(%s : %s : %s)", p.X, p.Y, p.Z)
}

// Extended is the twisted Edwards point (X/Z, Y/Z) with T = XY/Z.
type Extended[E ff.Field[E]] struct {
	X, Y, T, Z E
}

func (Extended[E]) FromAffine(a Affine[E]) Extended[E] {
	return Extended[E]{X: a.X, Y: a.Y, T: a.X.Mul(a.Y), Z: a.X.One()}
}

func (p Extended[E]) ToAffine() (Affine[E], bool) {
	zinv, ok := p.Z.Inverse()
	if !ok {
		return Affine[E]{}, false
	}
	return Affine[E]{X: p.X.Mul(zinv), Y: p.Y.Mul(zinv)}, true
}

func (p Extended[E]) Equal(q Extended[E]) bool {
	x := p.X.Mul(q.Z).Equal(q.X.Mul(p.Z))
	y := p.Y.Mul(q.Z).Equal(q.Y.Mul(p.Z))
	return x && y
}

func (p Extended[E]) Select(q Extended[E], cond int) Extended[E] {
	return Extended[E]{
		X: p.X.Select(q.X, cond),
		Y: p.Y.Select(q.Y, cond),
		T: p.T.Select(q.T, cond),
		Z: p.Z.Select(q.Z, cond),
	}
}

func (p Extended[E]) String() string {
	return fmt.Sprintf("(%s : %s : %s : %s)", p.X, p.Y, p.T, p.Z)
}

// Jacobian is the point (X/Z^2, Y/Z^3). Every point with Z = 0 is the point
// at infinity; Identity returns (0, 1, 0).
type Jacobian[E ff.Field[E]] struct {
	X, Y, Z E
}

func (Jacobian[E]) FromAffine(a Affine[E]) Jacobian[E] {
	return Jacobian[E]{X: a.X, Y: a.Y, Z: a.X.One()}
}

func (p Jacobian[E]) ToAffine() (Affine[E], bool) {
	zinv, ok := p.Z.Inverse()
	if !ok {
		return Affine[E]{}, false
	}
	zinv2 := zinv.Square()
	return Affine[E]{X: p.X.Mul(zinv2), Y: p.Y.Mul(zinv2).Mul(zinv)}, true
}

func (p Jacobian[E]) Equal(q Jacobian[E]) bool {
	pz2, qz2 := p.Z.Square(), q.Z.Square()
	x := p.X.Mul(qz2).Equal(q.X.Mul(pz2))
	y := p.Y.Mul(qz2).Mul(q.Z).Equal(q.Y.Mul(pz2).Mul(p.Z))
	return x && y
}

func (p Jacobian[E]) Select(q Jacobian[E], cond int) Jacobian[E] {
	return Jacobian[E]{X: p.X.Select(q.X, cond), Y: p.Y.Select(q.Y, cond), Z: p.Z.Select(q.Z, cond)}
}

func (p Jacobian[E]) String() string {
	return fmt.Sprintf("(%s : %s : %s)", p.X, p.Y, p.Z)
}
