package edwards25519

import (
	"fmt"

	filippo "filippo.io/edwards25519"
)

// ToFilippo converts u through its RFC 8032 encoding.
func ToFilippo(u Public) (*filippo.Point, error) {
	b := Encode(u)
	p, err := new(filippo.Point).SetBytes(b[:])
	if err != nil {
		return nil, fmt.Errorf("edwards25519: convert point: %w", err)
	}
	return p, nil
}

func FromFilippo(p *filippo.Point) (Public, error) {
	return Decode(p.Bytes())
}

func ScalarToFilippo(s Scalar) (*filippo.Scalar, error) {
	b := ScalarBytes(s)
	out, err := filippo.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		return nil, fmt.Errorf("edwards25519: convert scalar: %w", err)
	}
	return out, nil
}

func ScalarFromFilippo(s *filippo.Scalar) (Scalar, error) {
	return ScalarFromBytes(s.Bytes())
}
