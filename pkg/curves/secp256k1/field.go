package secp256k1

import (
	"github.com/smallyu/go-ecarith/pkg/bigint"
	"github.com/smallyu/go-ecarith/pkg/ff"
)

// Int is the 256-bit integer every field of this package is built on.
type Int = bigint.Int[uint64, [4]uint64]

func newInt(l0, l1, l2, l3 uint64) Int {
	return bigint.New[uint64]([4]uint64{l0, l1, l2, l3})
}

// p = 2^256 - 2^32 - 977
type fpParams struct{}

func (fpParams) Modulus() Int {
	return newInt(18446744069414583343, 18446744073709551615, 18446744073709551615, 18446744073709551615)
}
func (fpParams) MP() uint64 { return 15580212934572586289 }
func (fpParams) R() Int     { return newInt(4294968273, 0, 0, 0) }
func (fpParams) R2() Int    { return newInt(8392367050913, 1, 0, 0) }
func (fpParams) C() uint64  { return 0x1000003d1 }

type (
	// Fp is the coordinate field in Montgomery form.
	Fp = ff.Element[Int, ff.Montgomery[uint64, [4]uint64, fpParams]]
	// FpSolinas is the same field reduced with the Solinas fold.
	FpSolinas = ff.Element[Int, ff.GeneralReductionOperations[uint64, [4]uint64, ff.Solinas[uint64, [4]uint64, fpParams]]]
)

type scalarParams struct{}

func (scalarParams) Modulus() Int {
	return newInt(13822214165235122497, 13451932020343611451, 18446744073709551614, 18446744073709551615)
}
func (scalarParams) MP() uint64 { return 5408259542528602431 }
func (scalarParams) R() Int     { return newInt(4624529908474429119, 4994812053365940164, 1, 0) }
func (scalarParams) R2() Int {
	return newInt(9902555850136342848, 8364476168144746616, 16616019711348246470, 11342065889886772165)
}

// Scalar is the field of integers modulo the group order n.
type Scalar = ff.Element[Int, ff.Montgomery[uint64, [4]uint64, scalarParams]]

type field[E any] interface {
	ff.PrimeField[E, Int]
	comparable
}
