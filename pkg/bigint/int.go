package bigint

import (
	"encoding/hex"
	"math/big"
	"math/bits"
)

// Limbs lists the fixed array shapes an Int can be built on.
type Limbs[L Limb] interface {
	~[1]L | ~[2]L | ~[3]L | ~[4]L | ~[5]L | ~[6]L | ~[7]L | ~[8]L | ~[9]L | ~[12]L | ~[16]L
}

// Int is a fixed-width unsigned integer made of len(A) limbs, least
// significant limb first. Values are plain arrays: they copy by value, never
// allocate, and compare (and hash) by their limbs.
type Int[L Limb, A Limbs[L]] struct {
	limbs A
}

// New wraps a little-endian limb array.
func New[L Limb, A Limbs[L]](limbs A) Int[L, A] {
	return Int[L, A]{limbs: limbs}
}

// Zero returns 0.
func Zero[L Limb, A Limbs[L]]() Int[L, A] {
	return Int[L, A]{}
}

// One returns 1.
func One[L Limb, A Limbs[L]]() Int[L, A] {
	var z Int[L, A]
	z.limbs[0] = 1
	return z
}

// FromUint64 returns v, truncated to the integer width.
func FromUint64[L Limb, A Limbs[L]](v uint64) Int[L, A] {
	var z Int[L, A]
	w := LimbBits[L]()
	for i := 0; i < len(z.limbs) && v != 0; i++ {
		z.limbs[i] = L(v)
		if w == 64 {
			break
		}
		v >>= w
	}
	return z
}

// FromBig converts a non-negative big integer that fits the width.
func FromBig[L Limb, A Limbs[L]](v *big.Int) (Int[L, A], error) {
	var z Int[L, A]
	size := len(z.limbs) * LimbBytes[L]()
	if v.Sign() < 0 || v.BitLen() > size*8 {
		return z, ErrOutOfRange
	}
	return FromBytesBE[L, A](v.FillBytes(make([]byte, size)))
}

// Big returns x as a big integer.
func (x Int[L, A]) Big() *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

// Len returns the number of limbs.
func (x Int[L, A]) Len() int {
	return len(x.limbs)
}

// Limb returns limb i.
func (x Int[L, A]) Limb(i int) L {
	return x.limbs[i]
}

// Limbs returns the little-endian limb array.
func (x Int[L, A]) Limbs() A {
	return x.limbs
}

// SetLimb returns x with limb i replaced by v.
func (x Int[L, A]) SetLimb(i int, v L) Int[L, A] {
	x.limbs[i] = v
	return x
}

// AddCarry returns x + y + carry modulo b^N and the carry out.
func (x Int[L, A]) AddCarry(y Int[L, A], carry L) (Int[L, A], L) {
	for i := 0; i < len(x.limbs); i++ {
		x.limbs[i], carry = AddCarry(x.limbs[i], y.limbs[i], carry)
	}
	return x, carry
}

// SubBorrow returns x - y - borrow modulo b^N and the borrow out.
func (x Int[L, A]) SubBorrow(y Int[L, A], borrow L) (Int[L, A], L) {
	for i := 0; i < len(x.limbs); i++ {
		x.limbs[i], borrow = SubBorrow(x.limbs[i], y.limbs[i], borrow)
	}
	return x, borrow
}

// MulWide returns the 2N-limb value x*y + carry as its low and high halves.
// The result always fits: (b^N-1)^2 + b^N-1 < b^2N.
func (x Int[L, A]) MulWide(y, carry Int[L, A]) (lo, hi Int[L, A]) {
	n := len(x.limbs)
	lo = carry
	for i := 0; i < n; i++ {
		var c L
		for j := 0; j < n; j++ {
			k := i + j
			var acc L
			if k < n {
				acc = lo.limbs[k]
			} else {
				acc = hi.limbs[k-n]
			}
			l, h := MulCarry(x.limbs[i], y.limbs[j], c)
			l, cc := AddCarry(l, acc, 0)
			// h+cc cannot wrap: h == b-1 forces l == 0.
			c = h + cc
			if k < n {
				lo.limbs[k] = l
			} else {
				hi.limbs[k-n] = l
			}
		}
		hi.limbs[i] = c
	}
	return lo, hi
}

// MulLimb returns x*y as an N-limb value and the overflow limb.
func (x Int[L, A]) MulLimb(y L) (Int[L, A], L) {
	var c L
	for i := 0; i < len(x.limbs); i++ {
		x.limbs[i], c = MulCarry(x.limbs[i], y, c)
	}
	return x, c
}

// LessOrEqual reports whether x <= y. Every limb pair is visited and the
// answer comes from the final borrow, so the running time does not depend on
// where the operands differ.
func (x Int[L, A]) LessOrEqual(y Int[L, A]) bool {
	_, borrow := y.SubBorrow(x, 0)
	return borrow == 0
}

// Equal reports whether x == y without early exit.
func (x Int[L, A]) Equal(y Int[L, A]) bool {
	var acc L
	for i := 0; i < len(x.limbs); i++ {
		acc |= x.limbs[i] ^ y.limbs[i]
	}
	return acc == 0
}

// IsZero reports whether x == 0 without early exit.
func (x Int[L, A]) IsZero() bool {
	return x.ZeroBit() == 1
}

// ZeroBit returns 1 when x == 0 and 0 otherwise, without branching.
func (x Int[L, A]) ZeroBit() int {
	var acc L
	for i := 0; i < len(x.limbs); i++ {
		acc |= x.limbs[i]
	}
	v := uint64(acc)
	return int(1 ^ (v|-v)>>63)
}

// Select returns a if cond == 1 and b if cond == 0.
func Select[L Limb, A Limbs[L]](cond L, a, b Int[L, A]) Int[L, A] {
	m := Mask(cond)
	for i := 0; i < len(b.limbs); i++ {
		b.limbs[i] ^= m & (a.limbs[i] ^ b.limbs[i])
	}
	return b
}

// Shl returns x << k, dropping bits shifted past the width.
func (x Int[L, A]) Shl(k int) Int[L, A] {
	var z Int[L, A]
	n, w := len(x.limbs), LimbBits[L]()
	words, s := k/w, k%w
	for i := n - 1; i >= words; i-- {
		v := x.limbs[i-words] << s
		if s > 0 && i-words > 0 {
			v |= x.limbs[i-words-1] >> (w - s)
		}
		z.limbs[i] = v
	}
	return z
}

// Shr returns x >> k.
func (x Int[L, A]) Shr(k int) Int[L, A] {
	var z Int[L, A]
	n, w := len(x.limbs), LimbBits[L]()
	words, s := k/w, k%w
	for i := 0; i+words < n; i++ {
		v := x.limbs[i+words] >> s
		if s > 0 && i+words+1 < n {
			v |= x.limbs[i+words+1] << (w - s)
		}
		z.limbs[i] = v
	}
	return z
}

// Bit returns bit i of x as 0 or 1.
func (x Int[L, A]) Bit(i int) L {
	w := LimbBits[L]()
	return x.limbs[i/w] >> (i % w) & 1
}

// BitLen returns the position of the highest set bit plus one. It branches on
// the value and is meant for public data such as moduli.
func (x Int[L, A]) BitLen() int {
	w := LimbBits[L]()
	for i := len(x.limbs) - 1; i >= 0; i-- {
		if x.limbs[i] != 0 {
			return i*w + bits.Len64(uint64(x.limbs[i]))
		}
	}
	return 0
}

// LeadingZeros returns the number of zero bits above BitLen.
func (x Int[L, A]) LeadingZeros() int {
	return len(x.limbs)*LimbBits[L]() - x.BitLen()
}

// String formats x as fixed-width hexadecimal.
func (x Int[L, A]) String() string {
	return "0x" + hex.EncodeToString(x.Bytes())
}
