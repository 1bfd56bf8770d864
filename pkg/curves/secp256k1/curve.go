// Package secp256k1 instantiates the generic group layer for the curve
// y^2 = x^3 + 7 over GF(2^256 - 2^32 - 977).
//
// Two laws are provided over the same subgroup: Group uses Jacobian
// coordinates with separate doubling, CompleteGroup uses the complete
// projective formulas for a = 0.
package secp256k1

import (
	"io"

	"github.com/smallyu/go-ecarith/pkg/ec"
)

// Name identifies the curve in the registry and on the command line.
const Name = "secp256k1"

const generatorDomain = "go-ecarith/secp256k1/generators/v1"

var (
	baseX = newInt(6481385041966929816, 188021827762530521, 6170039885052185351, 8772561819708210092)
	baseY = newInt(11261198710074299576, 18237243440184513561, 6747795201694173352, 5204712524664259685)
)

type constants[E field[E]] struct{}

func (constants[E]) A() E {
	var f E
	return f.Zero()
}

func (constants[E]) B() E {
	var f E
	return f.FromInt(newInt(7, 0, 0, 0))
}

func (constants[E]) B3() E {
	var f E
	return f.FromInt(newInt(21, 0, 0, 0))
}

// subgroup holds what both laws share: the whole curve group has prime
// order, so the cofactor is 1.
type subgroup[E field[E]] struct{}

func (subgroup[E]) Cofactor() uint64 {
	return 1
}

// Generator returns the SEC 2 base point.
func (subgroup[E]) Generator() ec.Affine[E] {
	var f E
	return ec.Affine[E]{X: f.FromInt(baseX), Y: f.FromInt(baseY)}
}

func (subgroup[E]) BatchGenerators(n int, rng io.Reader) ([]ec.Affine[E], error) {
	return ec.DeriveGenerators[E](n, rng, generatorDomain, CompressedSize, liftCandidate[E])
}

// liftCandidate reads b as a compressed point, ignoring the unused bits of
// the prefix byte.
func liftCandidate[E field[E]](b []byte) (ec.Affine[E], bool) {
	buf := make([]byte, CompressedSize)
	copy(buf, b)
	buf[0] = 0x02 | buf[0]&1
	a, err := decodeAffine[E](buf)
	return a, err == nil
}

// Curve is secp256k1 with the Jacobian law.
type Curve[E field[E]] struct {
	ec.ShortWeierstrassJacobian[E, constants[E]]
	subgroup[E]
}

// CompleteCurve is secp256k1 with the complete projective law.
type CompleteCurve[E field[E]] struct {
	ec.ShortWeierstrassCompleteA0[E, constants[E]]
	subgroup[E]
}

type (
	Group  = ec.SubGroup[Fp, ec.Jacobian[Fp], Scalar, Int, Curve[Fp]]
	Point  = ec.GroupEC[ec.Jacobian[Fp], ec.Affine[Fp], Scalar, Group]
	Public = ec.PublicEC[ec.Jacobian[Fp], ec.Affine[Fp], Scalar, Group]

	CompleteGroup  = ec.SubGroup[Fp, ec.Projective[Fp], Scalar, Int, CompleteCurve[Fp]]
	CompletePoint  = ec.GroupEC[ec.Projective[Fp], ec.Affine[Fp], Scalar, CompleteGroup]
	CompletePublic = ec.PublicEC[ec.Projective[Fp], ec.Affine[Fp], Scalar, CompleteGroup]
)

// Generator returns the base point.
func Generator() Public {
	var p Point
	return p.Generator()
}

// ToComplete moves u to the complete law's group.
func ToComplete(u Public) CompletePublic {
	return ec.NewPublic[ec.Projective[Fp], ec.Affine[Fp], Scalar, CompleteGroup](u.Affine())
}

// FromComplete moves u back to the Jacobian law's group.
func FromComplete(u CompletePublic) Public {
	return ec.NewPublic[ec.Jacobian[Fp], ec.Affine[Fp], Scalar, Group](u.Affine())
}
