package ec

import (
	"fmt"
	"io"

	"github.com/smallyu/go-ecarith/pkg/bigint"
)

// PrimeGroupConfig is the full set of operations behind GroupEC: a group law
// on the internal representation P, a public representation U, and scalar
// multiplication by the scalar field S.
type PrimeGroupConfig[P any, U comparable, S any] interface {
	Identity() P
	Neg(p P) P
	Add(p, q P) P
	Double(p P) P
	Equal(p, q P) bool
	Generator() U
	// Rand returns a uniformly random group element.
	Rand(rng io.Reader) (U, error)
	IsValid(u U) bool
	// ToPublic normalizes p. It reports false if p has no public encoding.
	ToPublic(p P) (U, bool)
	FromPublic(u U) P
	AddPublic(p P, u U) P
	BatchGenerators(n int, rng io.Reader) ([]U, error)
	MulInt(p P, e bigint.Integer) P
	// ScalarMul must not branch on the scalar.
	ScalarMul(p P, s S) P
	ScalarMulPublic(u U, s S) P
	// MSM panics if the slices differ in length.
	MSM(bases []P, scalars []S) P
	MSMPublic(bases []U, scalars []S) P
}

// GroupEC is a group element in the internal representation P. Convert it
// with Public before it leaves the process: the coordinates of P depend on
// how the element was computed.
type GroupEC[P any, U comparable, S any, G PrimeGroupConfig[P, U, S]] struct {
	p P
}

// PublicEC is a group element in its canonical public representation. It is
// comparable and can be used as a map key.
type PublicEC[P any, U comparable, S any, G PrimeGroupConfig[P, U, S]] struct {
	u U
}

// NewGroupEC wraps a point of the internal representation.
func NewGroupEC[P any, U comparable, S any, G PrimeGroupConfig[P, U, S]](p P) GroupEC[P, U, S, G] {
	return GroupEC[P, U, S, G]{p: p}
}

// NewPublic wraps a public representation. It does not validate u; see
// PublicEC.IsValid.
func NewPublic[P any, U comparable, S any, G PrimeGroupConfig[P, U, S]](u U) PublicEC[P, U, S, G] {
	return PublicEC[P, U, S, G]{u: u}
}

// Sum adds up xs.
func Sum[P any, U comparable, S any, G PrimeGroupConfig[P, U, S]](xs ...GroupEC[P, U, S, G]) GroupEC[P, U, S, G] {
	var g G
	acc := g.Identity()
	for _, x := range xs {
		acc = g.Add(acc, x.p)
	}
	return GroupEC[P, U, S, G]{p: acc}
}

func (x GroupEC[P, U, S, G]) Point() P {
	return x.p
}

func (GroupEC[P, U, S, G]) Identity() GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.Identity()}
}

func (x GroupEC[P, U, S, G]) IsIdentity() bool {
	var g G
	return g.Equal(x.p, g.Identity())
}

func (x GroupEC[P, U, S, G]) Add(y GroupEC[P, U, S, G]) GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.Add(x.p, y.p)}
}

func (x GroupEC[P, U, S, G]) Sub(y GroupEC[P, U, S, G]) GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.Add(x.p, g.Neg(y.p))}
}

func (x GroupEC[P, U, S, G]) Neg() GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.Neg(x.p)}
}

func (x GroupEC[P, U, S, G]) Double() GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.Double(x.p)}
}

// MulInt multiplies by an arbitrary non-negative integer.
func (x GroupEC[P, U, S, G]) MulInt(e bigint.Integer) GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.MulInt(x.p, e)}
}

// Mul multiplies by a scalar in constant time.
func (x GroupEC[P, U, S, G]) Mul(s S) GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.ScalarMul(x.p, s)}
}

func (x GroupEC[P, U, S, G]) AddPublic(y PublicEC[P, U, S, G]) GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.AddPublic(x.p, y.u)}
}

func (x GroupEC[P, U, S, G]) SubPublic(y PublicEC[P, U, S, G]) GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.Add(x.p, g.Neg(g.FromPublic(y.u)))}
}

func (x GroupEC[P, U, S, G]) Equal(y GroupEC[P, U, S, G]) bool {
	var g G
	return g.Equal(x.p, y.p)
}

// Public normalizes x. It reports false if x has no public encoding.
func (x GroupEC[P, U, S, G]) Public() (PublicEC[P, U, S, G], bool) {
	var g G
	u, ok := g.ToPublic(x.p)
	return PublicEC[P, U, S, G]{u: u}, ok
}

func (GroupEC[P, U, S, G]) Generator() PublicEC[P, U, S, G] {
	var g G
	return PublicEC[P, U, S, G]{u: g.Generator()}
}

func (GroupEC[P, U, S, G]) RandomElement(rng io.Reader) (PublicEC[P, U, S, G], error) {
	var g G
	u, err := g.Rand(rng)
	return PublicEC[P, U, S, G]{u: u}, err
}

func (GroupEC[P, U, S, G]) BatchGenerators(n int, rng io.Reader) ([]PublicEC[P, U, S, G], error) {
	var g G
	us, err := g.BatchGenerators(n, rng)
	if err != nil {
		return nil, err
	}
	out := make([]PublicEC[P, U, S, G], len(us))
	for i, u := range us {
		out[i] = PublicEC[P, U, S, G]{u: u}
	}
	return out, nil
}

// MSM returns the sum of scalars[i]*bases[i]. It panics if the slices differ
// in length.
func (GroupEC[P, U, S, G]) MSM(bases []GroupEC[P, U, S, G], scalars []S) GroupEC[P, U, S, G] {
	var g G
	points := make([]P, len(bases))
	for i, b := range bases {
		points[i] = b.p
	}
	return GroupEC[P, U, S, G]{p: g.MSM(points, scalars)}
}

// MSMPublic is MSM over public bases.
func (GroupEC[P, U, S, G]) MSMPublic(bases []PublicEC[P, U, S, G], scalars []S) GroupEC[P, U, S, G] {
	var g G
	us := make([]U, len(bases))
	for i, b := range bases {
		us[i] = b.u
	}
	return GroupEC[P, U, S, G]{p: g.MSMPublic(us, scalars)}
}

func (x GroupEC[P, U, S, G]) String() string {
	if pub, ok := x.Public(); ok {
		return pub.String()
	}
	return "identity"
}

// Affine returns the wrapped public representation.
func (u PublicEC[P, U, S, G]) Affine() U {
	return u.u
}

// Point lifts u into the internal representation.
func (u PublicEC[P, U, S, G]) Point() GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.FromPublic(u.u)}
}

func (u PublicEC[P, U, S, G]) Mul(s S) GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.ScalarMulPublic(u.u, s)}
}

func (u PublicEC[P, U, S, G]) Add(v PublicEC[P, U, S, G]) GroupEC[P, U, S, G] {
	var g G
	return GroupEC[P, U, S, G]{p: g.AddPublic(g.FromPublic(u.u), v.u)}
}

func (u PublicEC[P, U, S, G]) Equal(v PublicEC[P, U, S, G]) bool {
	return u.u == v.u
}

// IsValid reports whether u lies in the prime order group.
func (u PublicEC[P, U, S, G]) IsValid() bool {
	var g G
	return g.IsValid(u.u)
}

func (u PublicEC[P, U, S, G]) String() string {
	return fmt.Sprint(u.u)
}
