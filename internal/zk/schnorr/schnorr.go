// Package schnorr implements a non-interactive Schnorr proof of knowledge of
// a discrete logarithm over any registered curve.
package schnorr

import (
	"crypto/sha256"
	"errors"
	"io"
	"math/big"

	"github.com/smallyu/go-ecarith/pkg/curves"
)

var ErrNilInput = errors.New("schnorr: inputs cannot be nil")

// Proof represents a Schnorr proof of knowledge of x such that X = x*G.
type Proof struct {
	R curves.Point  // Commitment R = k*G
	S curves.Scalar // Response s = k + e*x
}

// Prove generates a proof for the secret x behind X. The context bytes are
// bound into the challenge.
func Prove(c curves.Curve, x curves.Scalar, X curves.Point, context []byte, rng io.Reader) (*Proof, error) {
	if c == nil || x == nil || X == nil {
		return nil, ErrNilInput
	}

	k, err := c.NewScalar(rng)
	if err != nil {
		return nil, err
	}
	R := c.BasePoint().ScalarMult(k)

	e := challenge(c, X, R, context)
	return &Proof{R: R, S: k.Add(e.Mul(x))}, nil
}

// Verify checks s*G == R + e*X. The proof and statement are re-decoded on c
// first, so values from another curve make it return false.
func (p *Proof) Verify(c curves.Curve, X curves.Point, context []byte) bool {
	if p == nil || p.R == nil || p.S == nil || c == nil || X == nil {
		return false
	}
	R, err := c.NewPointFromBytes(p.R.Bytes())
	if err != nil {
		return false
	}
	s, err := c.NewScalarFromBytes(p.S.Bytes())
	if err != nil {
		return false
	}
	X, err = c.NewPointFromBytes(X.Bytes())
	if err != nil {
		return false
	}

	e := challenge(c, X, R, context)
	lhs := c.BasePoint().ScalarMult(s)
	rhs := R.Add(X.ScalarMult(e))
	return lhs.Equal(rhs)
}

// challenge computes H(name, X, R, context) mod n.
func challenge(c curves.Curve, X, R curves.Point, context []byte) curves.Scalar {
	h := sha256.New()
	h.Write([]byte(c.Name()))
	h.Write(X.Bytes())
	h.Write(R.Bytes())
	h.Write(context)
	return c.NewScalarFromBigInt(new(big.Int).SetBytes(h.Sum(nil)))
}
