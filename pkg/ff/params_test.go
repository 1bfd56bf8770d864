package ff

import "github.com/smallyu/go-ecarith/pkg/bigint"

type (
	int32x1 = bigint.Int[uint32, [1]uint32]
	int32x8 = bigint.Int[uint32, [8]uint32]
	int64x3 = bigint.Int[uint64, [3]uint64]
	int64x4 = bigint.Int[uint64, [4]uint64]
)

// Field of order 5 with 32-bit limbs.
type f5Params struct{}

func (f5Params) Modulus() int32x1 { return bigint.New[uint32]([1]uint32{5}) }
func (f5Params) MP() uint32       { return 858993459 }
func (f5Params) R() int32x1       { return bigint.New[uint32]([1]uint32{1}) }
func (f5Params) R2() int32x1      { return bigint.New[uint32]([1]uint32{1}) }

type F5 = Element[int32x1, Montgomery[uint32, [1]uint32, f5Params]]

// 2^255 - 19 in every supported shape.
type p25519 struct{}

func (p25519) Modulus() int64x4 {
	return bigint.New[uint64]([4]uint64{18446744073709551597, 18446744073709551615, 18446744073709551615, 9223372036854775807})
}
func (p25519) MP() uint64  { return 9708812670373448219 }
func (p25519) R() int64x4  { return bigint.New[uint64]([4]uint64{38, 0, 0, 0}) }
func (p25519) R2() int64x4 { return bigint.New[uint64]([4]uint64{1444, 0, 0, 0}) }
func (p25519) C() uint64   { return 38 }

type p25519x32 struct{}

func (p25519x32) Modulus() int32x8 {
	return bigint.New[uint32]([8]uint32{4294967277, 4294967295, 4294967295, 4294967295, 4294967295, 4294967295, 4294967295, 2147483647})
}
func (p25519x32) MP() uint32  { return 678152731 }
func (p25519x32) R() int32x8  { return bigint.New[uint32]([8]uint32{38}) }
func (p25519x32) R2() int32x8 { return bigint.New[uint32]([8]uint32{1444}) }
func (p25519x32) C() uint32   { return 38 }

type (
	Fp25519Mont      = Element[int64x4, Montgomery[uint64, [4]uint64, p25519]]
	Fp25519Solinas   = Element[int64x4, GeneralReductionOperations[uint64, [4]uint64, Solinas[uint64, [4]uint64, p25519]]]
	Fp25519Mont32    = Element[int32x8, Montgomery[uint32, [8]uint32, p25519x32]]
	Fp25519Solinas32 = Element[int32x8, GeneralReductionOperations[uint32, [8]uint32, Solinas[uint32, [8]uint32, p25519x32]]]
)

// NIST P-192 prime 2^192 - 2^64 - 1.
type p192 struct{}

func (p192) Modulus() int64x3 {
	return bigint.New[uint64]([3]uint64{18446744073709551615, 18446744073709551614, 18446744073709551615})
}
func (p192) MP() uint64  { return 1 }
func (p192) R() int64x3  { return bigint.New[uint64]([3]uint64{1, 1, 0}) }
func (p192) R2() int64x3 { return bigint.New[uint64]([3]uint64{1, 2, 1}) }

type FP192 = Element[int64x3, Montgomery[uint64, [3]uint64, p192]]
