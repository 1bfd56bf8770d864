package bigint

import "math/bits"

// Limb is one machine word of a multi-word integer.
//
// Carries and borrows are limb values equal to 0 or 1, the same convention
// math/bits uses.
type Limb interface {
	~uint32 | ~uint64
}

// LimbBits returns the width of L in bits.
func LimbBits[L Limb]() int {
	return bits.Len64(uint64(^L(0)))
}

// LimbBytes returns the width of L in bytes.
func LimbBytes[L Limb]() int {
	return LimbBits[L]() / 8
}

// AddCarry returns a + b + carry and the carry out.
func AddCarry[L Limb](a, b, carry L) (sum, carryOut L) {
	if LimbBits[L]() == 32 {
		s, c := bits.Add32(uint32(a), uint32(b), uint32(carry))
		return L(s), L(c)
	}
	s, c := bits.Add64(uint64(a), uint64(b), uint64(carry))
	return L(s), L(c)
}

// SubBorrow returns a - b - borrow and the borrow out.
func SubBorrow[L Limb](a, b, borrow L) (diff, borrowOut L) {
	if LimbBits[L]() == 32 {
		d, c := bits.Sub32(uint32(a), uint32(b), uint32(borrow))
		return L(d), L(c)
	}
	d, c := bits.Sub64(uint64(a), uint64(b), uint64(borrow))
	return L(d), L(c)
}

// MulCarry returns the double word a*b + carry split into its low and high
// halves. The sum cannot overflow two words.
func MulCarry[L Limb](a, b, carry L) (lo, hi L) {
	if LimbBits[L]() == 32 {
		p := uint64(a)*uint64(b) + uint64(carry)
		return L(p), L(p >> 32)
	}
	h, l := bits.Mul64(uint64(a), uint64(b))
	l, c := bits.Add64(l, uint64(carry), 0)
	return L(l), L(h + c)
}

// Mask turns a 0/1 flag into an all-zeros/all-ones word.
func Mask[L Limb](bit L) L {
	return -bit
}

// PutLimbBE writes v into the first LimbBytes bytes of b, most significant
// byte first.
func PutLimbBE[L Limb](b []byte, v L) {
	n := LimbBytes[L]()
	_ = b[n-1]
	for i := 0; i < n; i++ {
		b[n-1-i] = byte(v >> (8 * i))
	}
}

// PutLimbLE writes v into the first LimbBytes bytes of b, least significant
// byte first.
func PutLimbLE[L Limb](b []byte, v L) {
	n := LimbBytes[L]()
	_ = b[n-1]
	for i := 0; i < n; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// LimbFromBE reads a limb from the first LimbBytes bytes of b.
func LimbFromBE[L Limb](b []byte) L {
	n := LimbBytes[L]()
	_ = b[n-1]
	var v L
	for i := 0; i < n; i++ {
		v = v<<8 | L(b[i])
	}
	return v
}

// LimbFromLE reads a little-endian limb from the first LimbBytes bytes of b.
func LimbFromLE[L Limb](b []byte) L {
	n := LimbBytes[L]()
	_ = b[n-1]
	var v L
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | L(b[i])
	}
	return v
}
