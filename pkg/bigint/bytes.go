package bigint

import (
	"iter"
	"slices"
)

// Integer is anything that can be read as a big-endian byte string. Field
// exponentiation and scalar multiplication consume exponents through it.
type Integer interface {
	BytesBE() iter.Seq[byte]
}

// Bits returns the big-endian bit sequence of x.
func Bits(x Integer) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for b := range x.BytesBE() {
			for j := 7; j >= 0; j-- {
				if !yield(b>>j&1 == 1) {
					return
				}
			}
		}
	}
}

// U64 is a single-word Integer, handy for small public exponents.
type U64 uint64

// BytesBE yields the eight bytes of v, most significant first.
func (v U64) BytesBE() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for j := 7; j >= 0; j-- {
			if !yield(byte(v >> (8 * j))) {
				return
			}
		}
	}
}

// BytesBE yields the N*LimbBytes bytes of x, most significant first.
func (x Int[L, A]) BytesBE() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		size := LimbBytes[L]()
		for i := len(x.limbs) - 1; i >= 0; i-- {
			v := x.limbs[i]
			for j := size - 1; j >= 0; j-- {
				if !yield(byte(v >> (8 * j))) {
					return
				}
			}
		}
	}
}

// BytesLE yields the bytes of x, least significant first.
func (x Int[L, A]) BytesLE() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		size := LimbBytes[L]()
		for i := 0; i < len(x.limbs); i++ {
			v := x.limbs[i]
			for j := 0; j < size; j++ {
				if !yield(byte(v >> (8 * j))) {
					return
				}
			}
		}
	}
}

// BitsBE yields the N*LimbBits bits of x, most significant first.
func (x Int[L, A]) BitsBE() iter.Seq[bool] {
	return Bits(x)
}

// Bytes returns the fixed-width big-endian encoding of x.
func (x Int[L, A]) Bytes() []byte {
	return slices.Collect(x.BytesBE())
}

// AppendBytesBE appends the big-endian encoding of x to dst.
func (x Int[L, A]) AppendBytesBE(dst []byte) []byte {
	size := LimbBytes[L]()
	for i := len(x.limbs) - 1; i >= 0; i-- {
		var buf [8]byte
		PutLimbBE(buf[:size], x.limbs[i])
		dst = append(dst, buf[:size]...)
	}
	return dst
}

func checkLength[L Limb](n, limbs int) error {
	size := LimbBytes[L]()
	if n > limbs*size {
		return &BytesError{Len: n, Max: limbs * size, LimbSize: size, Err: ErrLengthTooBig}
	}
	if n%size != 0 {
		return &BytesError{Len: n, Max: limbs * size, LimbSize: size, Err: ErrLengthNotMultipleOfLimbSize}
	}
	return nil
}

// FromBytesBE decodes a big-endian byte string. The length must be a
// multiple of the limb size and at most the integer width; shorter inputs are
// zero-extended.
func FromBytesBE[L Limb, A Limbs[L]](b []byte) (Int[L, A], error) {
	var z Int[L, A]
	if err := checkLength[L](len(b), len(z.limbs)); err != nil {
		return z, err
	}
	size := LimbBytes[L]()
	for i := 0; i < len(b)/size; i++ {
		off := len(b) - (i+1)*size
		z.limbs[i] = LimbFromBE[L](b[off : off+size])
	}
	return z, nil
}

// FromBytesLE decodes a little-endian byte string under the same length rules
// as FromBytesBE.
func FromBytesLE[L Limb, A Limbs[L]](b []byte) (Int[L, A], error) {
	var z Int[L, A]
	if err := checkLength[L](len(b), len(z.limbs)); err != nil {
		return z, err
	}
	size := LimbBytes[L]()
	for i := 0; i < len(b)/size; i++ {
		z.limbs[i] = LimbFromLE[L](b[i*size : (i+1)*size])
	}
	return z, nil
}
