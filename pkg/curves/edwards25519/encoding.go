package edwards25519

import (
	"errors"
	"slices"

	"github.com/smallyu/go-ecarith/pkg/bigint"
	"github.com/smallyu/go-ecarith/pkg/ec"
)

// EncodedSize is the length of point and scalar encodings.
const EncodedSize = 32

var (
	ErrInvalidLength = errors.New("edwards25519: invalid encoding length")
	ErrNonCanonical  = errors.New("edwards25519: non-canonical encoding")
	ErrNotOnCurve    = errors.New("edwards25519: point is not on the curve")
)

var (
	// (p+3)/8
	sqrtExponent = newInt(18446744073709551614, 18446744073709551615, 18446744073709551615, 1152921504606846975)
	sqrtM1       = newInt(14190309331451158704, 3405592160176694392, 3120150775007532967, 3135389899092516619)
)

// Encode returns the RFC 8032 encoding of u: y in little-endian with the
// low bit of x in the top bit.
func Encode(u Public) [EncodedSize]byte {
	return encodeAffine(u.Affine())
}

// Decode parses an RFC 8032 encoding. The result is on the curve but may lie
// outside the prime order subgroup; check it with IsValid when that matters.
func Decode(b []byte) (Public, error) {
	a, err := decodeAffine[Fp](b)
	if err != nil {
		return Public{}, err
	}
	return ec.NewPublic[ec.Extended[Fp], ec.Affine[Fp], Scalar, Group](a), nil
}

func encodeAffine[E field[E]](a ec.Affine[E]) [EncodedSize]byte {
	var out [EncodedSize]byte
	copy(out[:], slices.Collect(a.Y.AsInt().BytesLE()))
	out[31] |= byte(a.X.AsInt().Limb(0)&1) << 7
	return out
}

func decodeAffine[E field[E]](b []byte) (ec.Affine[E], error) {
	if len(b) != EncodedSize {
		return ec.Affine[E]{}, ErrInvalidLength
	}
	var buf [EncodedSize]byte
	copy(buf[:], b)
	sign := uint64(buf[31] >> 7)
	buf[31] &= 0x7f

	yInt, err := bigint.FromBytesLE[uint64, [4]uint64](buf[:])
	if err != nil {
		return ec.Affine[E]{}, err
	}
	var f E
	if f.Modulus().LessOrEqual(yInt) {
		return ec.Affine[E]{}, ErrNonCanonical
	}

	// x^2 = (y^2 - 1) / (d*y^2 + 1)
	var k constants[E]
	one := f.One()
	y := f.FromInt(yInt)
	yy := y.Square()
	vinv, ok := yy.Mul(k.D()).Add(one).Inverse()
	if !ok {
		return ec.Affine[E]{}, ErrNotOnCurve
	}
	w := yy.Sub(one).Mul(vinv)
	x := w.Exp(sqrtExponent)
	if !x.Square().Equal(w) {
		x = x.Mul(f.FromInt(sqrtM1))
		if !x.Square().Equal(w) {
			return ec.Affine[E]{}, ErrNotOnCurve
		}
	}
	if x.IsZero() && sign == 1 {
		return ec.Affine[E]{}, ErrNonCanonical
	}
	if x.AsInt().Limb(0)&1 != sign {
		x = x.Neg()
	}

	a := ec.Affine[E]{X: x, Y: y}
	var c Curve[E]
	if !c.IsOnCurve(a) {
		return ec.Affine[E]{}, ErrNotOnCurve
	}
	return a, nil
}

// ScalarBytes returns the 32-byte little-endian encoding of s.
func ScalarBytes(s Scalar) [EncodedSize]byte {
	var out [EncodedSize]byte
	copy(out[:], slices.Collect(s.AsInt().BytesLE()))
	return out
}

// ScalarFromBytes parses a canonical little-endian scalar.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != EncodedSize {
		return Scalar{}, ErrInvalidLength
	}
	v, err := bigint.FromBytesLE[uint64, [4]uint64](b)
	if err != nil {
		return Scalar{}, err
	}
	var s Scalar
	if s.Modulus().LessOrEqual(v) {
		return Scalar{}, ErrNonCanonical
	}
	return s.FromInt(v), nil
}

// ScalarFromUniformBytes reduces a 64-byte little-endian string modulo l.
func ScalarFromUniformBytes(b []byte) (Scalar, error) {
	if len(b) != 2*EncodedSize {
		return Scalar{}, ErrInvalidLength
	}
	lo, err := bigint.FromBytesLE[uint64, [4]uint64](b[:EncodedSize])
	if err != nil {
		return Scalar{}, err
	}
	hi, err := bigint.FromBytesLE[uint64, [4]uint64](b[EncodedSize:])
	if err != nil {
		return Scalar{}, err
	}
	// R = 2^256 mod l
	var s Scalar
	return s.FromInt(lo).Add(s.FromInt(hi).Mul(s.FromInt(scalarParams{}.R()))), nil
}
