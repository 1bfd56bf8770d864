package curves

import (
	"io"
	"math/big"

	"github.com/smallyu/go-ecarith/pkg/bigint"
	"github.com/smallyu/go-ecarith/pkg/curves/secp256k1"
)

// infinity is the SEC1 encoding of the point at infinity.
var infinity = []byte{0x00}

type Secp256k1Curve struct{}

func (Secp256k1Curve) Name() string {
	return secp256k1.Name
}

func (Secp256k1Curve) Order() *big.Int {
	var s secp256k1.Scalar
	return s.Modulus().Big()
}

func (Secp256k1Curve) NewScalar(rng io.Reader) (Scalar, error) {
	var s secp256k1.Scalar
	v, err := s.Rand(rng)
	if err != nil {
		return nil, err
	}
	return &Secp256k1Scalar{s: v}, nil
}

func (c Secp256k1Curve) NewScalarFromBigInt(n *big.Int) Scalar {
	v, err := bigint.FromBig[uint64, [4]uint64](new(big.Int).Mod(n, c.Order()))
	if err != nil {
		panic(err)
	}
	var s secp256k1.Scalar
	return &Secp256k1Scalar{s: s.FromInt(v)}
}

func (Secp256k1Curve) NewScalarFromBytes(b []byte) (Scalar, error) {
	s, err := secp256k1.ScalarFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &Secp256k1Scalar{s: s}, nil
}

func (Secp256k1Curve) BasePoint() Point {
	return &Secp256k1Point{p: secp256k1.Generator().Point()}
}

// NewPointFromBytes accepts SEC1 compressed, uncompressed and infinity
// encodings.
func (Secp256k1Curve) NewPointFromBytes(b []byte) (Point, error) {
	if len(b) == 1 && b[0] == infinity[0] {
		var p secp256k1.Point
		return &Secp256k1Point{p: p.Identity()}, nil
	}
	u, err := secp256k1.Decode(b)
	if err != nil {
		return nil, err
	}
	return &Secp256k1Point{p: u.Point()}, nil
}

func (Secp256k1Curve) Generators(n int, rng io.Reader) ([]Point, error) {
	var p secp256k1.Point
	us, err := p.BatchGenerators(n, rng)
	if err != nil {
		return nil, err
	}
	out := make([]Point, len(us))
	for i, u := range us {
		out[i] = &Secp256k1Point{p: u.Point()}
	}
	return out, nil
}

// Secp256k1Scalar implements Scalar. Bytes are big-endian.
type Secp256k1Scalar struct {
	s secp256k1.Scalar
}

func (s *Secp256k1Scalar) Bytes() []byte {
	b := secp256k1.ScalarBytes(s.s)
	return b[:]
}

func (s *Secp256k1Scalar) BigInt() *big.Int {
	return s.s.AsInt().Big()
}

func (s *Secp256k1Scalar) Add(other Scalar) Scalar {
	o, ok := other.(*Secp256k1Scalar)
	if !ok {
		panic(mismatch("*Secp256k1Scalar", other))
	}
	return &Secp256k1Scalar{s: s.s.Add(o.s)}
}

func (s *Secp256k1Scalar) Mul(other Scalar) Scalar {
	o, ok := other.(*Secp256k1Scalar)
	if !ok {
		panic(mismatch("*Secp256k1Scalar", other))
	}
	return &Secp256k1Scalar{s: s.s.Mul(o.s)}
}

func (s *Secp256k1Scalar) Invert() Scalar {
	inv, _ := s.s.Inverse()
	return &Secp256k1Scalar{s: inv}
}

// Secp256k1Point implements Point with the SEC1 compressed encoding.
type Secp256k1Point struct {
	p secp256k1.Point
}

func (p *Secp256k1Point) Bytes() []byte {
	u, ok := p.p.Public()
	if !ok {
		return append([]byte(nil), infinity...)
	}
	b := secp256k1.Encode(u)
	return b[:]
}

func (p *Secp256k1Point) Add(other Point) Point {
	o, ok := other.(*Secp256k1Point)
	if !ok {
		panic(mismatch("*Secp256k1Point", other))
	}
	return &Secp256k1Point{p: p.p.Add(o.p)}
}

func (p *Secp256k1Point) ScalarMult(scalar Scalar) Point {
	s, ok := scalar.(*Secp256k1Scalar)
	if !ok {
		panic(mismatch("*Secp256k1Scalar", scalar))
	}
	return &Secp256k1Point{p: p.p.Mul(s.s)}
}

func (p *Secp256k1Point) Equal(other Point) bool {
	o, ok := other.(*Secp256k1Point)
	return ok && p.p.Equal(o.p)
}

func (p *Secp256k1Point) String() string {
	return p.p.String()
}
