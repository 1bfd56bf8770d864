package curves

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReader() *rand.ChaCha8 {
	return rand.NewChaCha8([32]byte{7})
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"edwards25519", "secp256k1"}, Names())

	for _, name := range Names() {
		c, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	_, err := ByName("p256")
	assert.ErrorIs(t, err, ErrUnknownCurve)
}

func TestScalar(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			curve, err := ByName(name)
			require.NoError(t, err)

			s1, err := curve.NewScalar(testReader())
			require.NoError(t, err)
			assert.Equal(t, -1, s1.BigInt().Cmp(curve.Order()))

			val := big.NewInt(12345)
			s2 := curve.NewScalarFromBigInt(val)
			assert.Equal(t, val, s2.BigInt())

			assert.Equal(t, big.NewInt(24690), s2.Add(s2).BigInt())
			assert.Equal(t, new(big.Int).Mul(val, val), s2.Mul(s2).BigInt())
			assert.Equal(t, big.NewInt(1), s2.Invert().Mul(s2).BigInt())

			wrapped := curve.NewScalarFromBigInt(new(big.Int).Add(curve.Order(), val))
			assert.Equal(t, val, wrapped.BigInt())
			negative := curve.NewScalarFromBigInt(big.NewInt(-1))
			assert.Equal(t, new(big.Int).Sub(curve.Order(), big.NewInt(1)), negative.BigInt())

			back, err := curve.NewScalarFromBytes(s1.Bytes())
			require.NoError(t, err)
			assert.Equal(t, s1.BigInt(), back.BigInt())

			zero := curve.NewScalarFromBigInt(big.NewInt(0))
			assert.Equal(t, 0, zero.Invert().BigInt().Sign())
		})
	}
}

func TestPoint(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			curve, err := ByName(name)
			require.NoError(t, err)

			g := curve.BasePoint()
			two := curve.NewScalarFromBigInt(big.NewInt(2))
			p2 := g.ScalarMult(two)
			p3 := g.Add(g)
			assert.Equal(t, p2.Bytes(), p3.Bytes())
			assert.True(t, p2.Equal(p3))
			assert.False(t, p2.Equal(g))

			p4, err := curve.NewPointFromBytes(p2.Bytes())
			require.NoError(t, err)
			assert.True(t, p2.Equal(p4))

			order := curve.NewScalarFromBigInt(new(big.Int).Sub(curve.Order(), big.NewInt(1)))
			id := g.ScalarMult(order).Add(g)
			back, err := curve.NewPointFromBytes(id.Bytes())
			require.NoError(t, err)
			assert.True(t, back.Equal(id))
			assert.True(t, back.Add(g).Equal(g))

			gens, err := curve.Generators(3, nil)
			require.NoError(t, err)
			require.Len(t, gens, 3)
			assert.False(t, gens[0].Equal(gens[1]))
			assert.False(t, gens[0].Equal(g))

			_, err = curve.NewPointFromBytes([]byte{1, 2, 3})
			assert.Error(t, err)
		})
	}
}

func TestMismatchedCurvesPanic(t *testing.T) {
	ed, k1 := Ed25519Curve{}, Secp256k1Curve{}
	assert.Panics(t, func() { ed.BasePoint().Add(k1.BasePoint()) })
	assert.Panics(t, func() { k1.BasePoint().ScalarMult(ed.NewScalarFromBigInt(big.NewInt(1))) })
	assert.False(t, ed.BasePoint().Equal(k1.BasePoint()))
}
