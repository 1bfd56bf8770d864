package secp256k1

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-ecarith/pkg/bigint"
	"github.com/smallyu/go-ecarith/pkg/ec"
)

// SEC1 encoding sizes.
const (
	ScalarSize       = 32
	CompressedSize   = 33
	UncompressedSize = 65
)

var (
	ErrInvalidLength = errors.New("secp256k1: invalid encoding length")
	ErrInvalidPrefix = errors.New("secp256k1: invalid encoding prefix")
	ErrNonCanonical  = errors.New("secp256k1: non-canonical encoding")
	ErrNotOnCurve    = errors.New("secp256k1: point is not on the curve")
)

// (p+1)/4
var sqrtExponent = newInt(18446744072635809548, 18446744073709551615, 18446744073709551615, 4611686018427387903)

// Encode returns the 33-byte SEC1 compressed encoding of u.
func Encode(u Public) [CompressedSize]byte {
	a := u.Affine()
	var out [CompressedSize]byte
	out[0] = 0x02 | byte(a.Y.AsInt().Limb(0)&1)
	copy(out[1:], a.X.Bytes())
	return out
}

// EncodeUncompressed returns the 65-byte SEC1 uncompressed encoding of u.
func EncodeUncompressed(u Public) [UncompressedSize]byte {
	a := u.Affine()
	var out [UncompressedSize]byte
	out[0] = 0x04
	copy(out[1:33], a.X.Bytes())
	copy(out[33:], a.Y.Bytes())
	return out
}

// Decode parses a compressed or uncompressed SEC1 encoding. The point at
// infinity has no encoding.
func Decode(b []byte) (Public, error) {
	a, err := decodeAffine[Fp](b)
	if err != nil {
		return Public{}, err
	}
	return ec.NewPublic[ec.Jacobian[Fp], ec.Affine[Fp], Scalar, Group](a), nil
}

func decodeCoordinate[E field[E]](b []byte) (E, error) {
	var f E
	v, err := bigint.FromBytesBE[uint64, [4]uint64](b)
	if err != nil {
		return f, err
	}
	if f.Modulus().LessOrEqual(v) {
		return f, ErrNonCanonical
	}
	return f.FromInt(v), nil
}

func decodeAffine[E field[E]](b []byte) (ec.Affine[E], error) {
	if len(b) == 0 {
		return ec.Affine[E]{}, ErrInvalidLength
	}
	var c Curve[E]
	switch b[0] {
	case 0x02, 0x03:
		if len(b) != CompressedSize {
			return ec.Affine[E]{}, ErrInvalidLength
		}
		x, err := decodeCoordinate[E](b[1:])
		if err != nil {
			return ec.Affine[E]{}, err
		}
		var k constants[E]
		rhs := x.Square().Mul(x).Add(k.B())
		y := rhs.Exp(sqrtExponent)
		if !y.Square().Equal(rhs) {
			return ec.Affine[E]{}, ErrNotOnCurve
		}
		if y.AsInt().Limb(0)&1 != uint64(b[0]&1) {
			y = y.Neg()
		}
		return ec.Affine[E]{X: x, Y: y}, nil

	case 0x04:
		if len(b) != UncompressedSize {
			return ec.Affine[E]{}, ErrInvalidLength
		}
		x, err := decodeCoordinate[E](b[1:33])
		if err != nil {
			return ec.Affine[E]{}, err
		}
		y, err := decodeCoordinate[E](b[33:])
		if err != nil {
			return ec.Affine[E]{}, err
		}
		a := ec.Affine[E]{X: x, Y: y}
		if !c.IsOnCurve(a) {
			return ec.Affine[E]{}, ErrNotOnCurve
		}
		return a, nil

	default:
		return ec.Affine[E]{}, fmt.Errorf("%w: 0x%02x", ErrInvalidPrefix, b[0])
	}
}

// ScalarBytes returns the 32-byte big-endian encoding of s.
func ScalarBytes(s Scalar) [ScalarSize]byte {
	var out [ScalarSize]byte
	copy(out[:], s.Bytes())
	return out
}

// ScalarFromBytes parses a canonical big-endian scalar.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarSize {
		return Scalar{}, ErrInvalidLength
	}
	v, err := bigint.FromBytesBE[uint64, [4]uint64](b)
	if err != nil {
		return Scalar{}, err
	}
	var s Scalar
	if s.Modulus().LessOrEqual(v) {
		return Scalar{}, ErrNonCanonical
	}
	return s.FromInt(v), nil
}
