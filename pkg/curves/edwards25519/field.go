package edwards25519

import (
	"github.com/smallyu/go-ecarith/pkg/bigint"
	"github.com/smallyu/go-ecarith/pkg/ff"
)

// Int is the 256-bit integer every field of this package is built on.
type Int = bigint.Int[uint64, [4]uint64]

func newInt(l0, l1, l2, l3 uint64) Int {
	return bigint.New[uint64]([4]uint64{l0, l1, l2, l3})
}

// p = 2^255 - 19
type fpParams struct{}

func (fpParams) Modulus() Int {
	return newInt(18446744073709551597, 18446744073709551615, 18446744073709551615, 9223372036854775807)
}
func (fpParams) C() uint64  { return 38 }
func (fpParams) MP() uint64 { return 9708812670373448219 }
func (fpParams) R() Int     { return newInt(38, 0, 0, 0) }
func (fpParams) R2() Int    { return newInt(1444, 0, 0, 0) }

type (
	// Fp is the coordinate field, reduced with the Solinas fold.
	Fp = ff.Element[Int, ff.GeneralReductionOperations[uint64, [4]uint64, ff.Solinas[uint64, [4]uint64, fpParams]]]
	// FpMontgomery is the same field in Montgomery form.
	FpMontgomery = ff.Element[Int, ff.Montgomery[uint64, [4]uint64, fpParams]]
)

// l = 2^252 + 27742317777372353535851937790883648493
type scalarParams struct{}

func (scalarParams) Modulus() Int {
	return newInt(6346243789798364141, 1503914060200516822, 0, 1152921504606846976)
}
func (scalarParams) MP() uint64 { return 15183074304973897243 }
func (scalarParams) R() Int {
	return newInt(15486807595281847581, 14334777244411350896, 18446744073709551614, 1152921504606846975)
}
func (scalarParams) R2() Int {
	return newInt(11819153939886771969, 14991950615390032711, 14910419812499177061, 259310039853996605)
}

// Scalar is the field of integers modulo the subgroup order l.
type Scalar = ff.Element[Int, ff.Montgomery[uint64, [4]uint64, scalarParams]]

// field is satisfied by both representations of Fp.
type field[E any] interface {
	ff.PrimeField[E, Int]
	comparable
}
