package curves

import (
	"io"
	"math/big"

	"github.com/smallyu/go-ecarith/pkg/bigint"
	"github.com/smallyu/go-ecarith/pkg/curves/edwards25519"
)

type Ed25519Curve struct{}

func (Ed25519Curve) Name() string {
	return edwards25519.Name
}

func (Ed25519Curve) Order() *big.Int {
	var s edwards25519.Scalar
	return s.Modulus().Big()
}

func (Ed25519Curve) NewScalar(rng io.Reader) (Scalar, error) {
	var s edwards25519.Scalar
	v, err := s.Rand(rng)
	if err != nil {
		return nil, err
	}
	return &Ed25519Scalar{s: v}, nil
}

func (c Ed25519Curve) NewScalarFromBigInt(n *big.Int) Scalar {
	v, err := bigint.FromBig[uint64, [4]uint64](new(big.Int).Mod(n, c.Order()))
	if err != nil {
		// unreachable: the residue fits in 256 bits
		panic(err)
	}
	var s edwards25519.Scalar
	return &Ed25519Scalar{s: s.FromInt(v)}
}

func (Ed25519Curve) NewScalarFromBytes(b []byte) (Scalar, error) {
	s, err := edwards25519.ScalarFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &Ed25519Scalar{s: s}, nil
}

func (Ed25519Curve) BasePoint() Point {
	return &Ed25519Point{p: edwards25519.Generator().Point()}
}

func (Ed25519Curve) NewPointFromBytes(b []byte) (Point, error) {
	u, err := edwards25519.Decode(b)
	if err != nil {
		return nil, err
	}
	return &Ed25519Point{p: u.Point()}, nil
}

func (Ed25519Curve) Generators(n int, rng io.Reader) ([]Point, error) {
	var p edwards25519.Point
	us, err := p.BatchGenerators(n, rng)
	if err != nil {
		return nil, err
	}
	out := make([]Point, len(us))
	for i, u := range us {
		out[i] = &Ed25519Point{p: u.Point()}
	}
	return out, nil
}

// Ed25519Scalar implements Scalar. Bytes are little-endian.
type Ed25519Scalar struct {
	s edwards25519.Scalar
}

func (s *Ed25519Scalar) Bytes() []byte {
	b := edwards25519.ScalarBytes(s.s)
	return b[:]
}

func (s *Ed25519Scalar) BigInt() *big.Int {
	return s.s.AsInt().Big()
}

func (s *Ed25519Scalar) Add(other Scalar) Scalar {
	o, ok := other.(*Ed25519Scalar)
	if !ok {
		panic(mismatch("*Ed25519Scalar", other))
	}
	return &Ed25519Scalar{s: s.s.Add(o.s)}
}

func (s *Ed25519Scalar) Mul(other Scalar) Scalar {
	o, ok := other.(*Ed25519Scalar)
	if !ok {
		panic(mismatch("*Ed25519Scalar", other))
	}
	return &Ed25519Scalar{s: s.s.Mul(o.s)}
}

func (s *Ed25519Scalar) Invert() Scalar {
	inv, _ := s.s.Inverse()
	return &Ed25519Scalar{s: inv}
}

// Ed25519Point implements Point with the RFC 8032 encoding.
type Ed25519Point struct {
	p edwards25519.Point
}

func (p *Ed25519Point) Bytes() []byte {
	// Every extended point has Z != 0.
	u, _ := p.p.Public()
	b := edwards25519.Encode(u)
	return b[:]
}

func (p *Ed25519Point) Add(other Point) Point {
	o, ok := other.(*Ed25519Point)
	if !ok {
		panic(mismatch("*Ed25519Point", other))
	}
	return &Ed25519Point{p: p.p.Add(o.p)}
}

func (p *Ed25519Point) ScalarMult(scalar Scalar) Point {
	s, ok := scalar.(*Ed25519Scalar)
	if !ok {
		panic(mismatch("*Ed25519Scalar", scalar))
	}
	return &Ed25519Point{p: p.p.Mul(s.s)}
}

func (p *Ed25519Point) Equal(other Point) bool {
	o, ok := other.(*Ed25519Point)
	return ok && p.p.Equal(o.p)
}

func (p *Ed25519Point) String() string {
	return p.p.String()
}
