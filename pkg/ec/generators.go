package ec

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/smallyu/go-ecarith/pkg/ff"
)

// DeriveGenerators maps SHAKE256 output onto the curve by try-and-increment
// until n points are found. The hash input is the domain string, a 32-byte
// seed, the index of the generator and a retry counter. With a nil rng the
// seed is all zeros, so the output is fixed for the domain.
//
// decode turns size bytes into a subgroup element. It must clear the
// cofactor and reject the identity.
func DeriveGenerators[E ff.Field[E]](n int, rng io.Reader, domain string, size int, decode func([]byte) (Affine[E], bool)) ([]Affine[E], error) {
	if n < 0 {
		return nil, fmt.Errorf("ec: negative generator count %d", n)
	}
	var seed [32]byte
	if rng != nil {
		if _, err := io.ReadFull(rng, seed[:]); err != nil {
			return nil, fmt.Errorf("ec: read generator seed: %w", err)
		}
	}

	out := make([]Affine[E], 0, n)
	buf := make([]byte, size)
	var ctr [8]byte
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint32(ctr[:4], uint32(i))
		for try := uint32(0); ; try++ {
			binary.BigEndian.PutUint32(ctr[4:], try)
			h := sha3.NewShake256()
			h.Write([]byte(domain))
			h.Write(seed[:])
			h.Write(ctr[:])
			h.Read(buf)
			if a, ok := decode(buf); ok {
				out = append(out, a)
				break
			}
		}
	}
	return out, nil
}
