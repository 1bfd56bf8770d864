// Package edwards25519 instantiates the generic group layer for the twisted
// Edwards curve -x^2 + y^2 = 1 + d*x^2*y^2 over GF(2^255 - 19), the curve
// behind Ed25519.
package edwards25519

import (
	"io"

	"github.com/smallyu/go-ecarith/pkg/ec"
)

// Name identifies the curve in the registry and on the command line.
const Name = "edwards25519"

const generatorDomain = "go-ecarith/edwards25519/generators/v1"

// d = -121665/121666
var (
	dInt  = newInt(8496970652267935907, 31536524315187371, 10144147576115030168, 5909686906226998899)
	d2Int = newInt(16993941304535871833, 63073048630374742, 1841551078520508720, 2596001775599221991)

	baseX = newInt(14507833142362363162, 7578651490590762930, 13881468655802702940, 2407515759118799870)
	baseY = newInt(7378697629483820632, 7378697629483820646, 7378697629483820646, 7378697629483820646)
)

type constants[E field[E]] struct{}

func (constants[E]) D() E {
	var f E
	return f.FromInt(dInt)
}

func (constants[E]) D2() E {
	var f E
	return f.FromInt(d2Int)
}

// Curve is the prime order subgroup of edwards25519 with coordinates in E.
type Curve[E field[E]] struct {
	ec.EdwardsAM1Unified[E, constants[E]]
}

func (Curve[E]) Cofactor() uint64 {
	return 8
}

// Generator returns the RFC 8032 base point.
func (Curve[E]) Generator() ec.Affine[E] {
	var f E
	return ec.Affine[E]{X: f.FromInt(baseX), Y: f.FromInt(baseY)}
}

func (Curve[E]) BatchGenerators(n int, rng io.Reader) ([]ec.Affine[E], error) {
	return ec.DeriveGenerators[E](n, rng, generatorDomain, EncodedSize, clearCofactor[E])
}

// clearCofactor decodes b as a curve point and multiplies it by 8.
func clearCofactor[E field[E]](b []byte) (ec.Affine[E], bool) {
	a, err := decodeAffine[E](b)
	if err != nil {
		return ec.Affine[E]{}, false
	}
	var c Curve[E]
	var p ec.Extended[E]
	q := c.Double(c.Double(c.Double(p.FromAffine(a))))
	if ec.IsIdentity[E, ec.Extended[E], Curve[E]](c, q) {
		return ec.Affine[E]{}, false
	}
	return q.ToAffine()
}

type (
	Group  = ec.SubGroup[Fp, ec.Extended[Fp], Scalar, Int, Curve[Fp]]
	Point  = ec.GroupEC[ec.Extended[Fp], ec.Affine[Fp], Scalar, Group]
	Public = ec.PublicEC[ec.Extended[Fp], ec.Affine[Fp], Scalar, Group]

	// The same group with Montgomery form coordinates.
	GroupMontgomery  = ec.SubGroup[FpMontgomery, ec.Extended[FpMontgomery], Scalar, Int, Curve[FpMontgomery]]
	PointMontgomery  = ec.GroupEC[ec.Extended[FpMontgomery], ec.Affine[FpMontgomery], Scalar, GroupMontgomery]
	PublicMontgomery = ec.PublicEC[ec.Extended[FpMontgomery], ec.Affine[FpMontgomery], Scalar, GroupMontgomery]
)

// Generator returns the base point.
func Generator() Public {
	var p Point
	return p.Generator()
}
