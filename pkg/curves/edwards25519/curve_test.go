package edwards25519

import (
	"encoding/hex"
	"errors"
	"io"
	"math/rand/v2"
	"testing"
	"testing/iotest"

	filippo "filippo.io/edwards25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecarith/pkg/bigint"
	"github.com/smallyu/go-ecarith/pkg/ec"
)

var orderMinusOne = newInt(6346243789798364140, 1503914060200516822, 0, 1152921504606846976)

func testReader(seed byte) io.Reader {
	var key [32]byte
	key[0] = seed
	return rand.NewChaCha8(key)
}

func scalarFromUint64(v uint64) Scalar {
	var s Scalar
	return s.FromUint64(v)
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestGeneratorOrder(t *testing.T) {
	g := Generator()
	var s Scalar

	t.Run("l*G is the identity", func(t *testing.T) {
		assert.True(t, g.Point().MulInt(s.Modulus()).IsIdentity())
	})

	t.Run("(l-1)*G is -G", func(t *testing.T) {
		assert.True(t, g.Point().MulInt(orderMinusOne).Equal(g.Point().Neg()))
		assert.True(t, g.Mul(s.One().Neg()).Equal(g.Point().Neg()))
	})

	t.Run("montgomery coordinates", func(t *testing.T) {
		var p PointMontgomery
		gm := p.Generator()
		assert.True(t, gm.Point().MulInt(s.Modulus()).IsIdentity())
		assert.True(t, gm.Mul(s.One().Neg()).Equal(gm.Point().Neg()))
	})

	t.Run("generator is valid", func(t *testing.T) {
		var c Curve[Fp]
		assert.True(t, c.IsOnCurve(g.Affine()))
		assert.True(t, g.IsValid())
	})
}

func TestGroupLaws(t *testing.T) {
	r := testReader(1)
	g := Generator()
	var s Scalar
	var id Point
	id = id.Identity()

	for i := 0; i < 8; i++ {
		a, err := s.Rand(r)
		require.NoError(t, err)
		b, err := s.Rand(r)
		require.NoError(t, err)
		pa, pb := g.Mul(a), g.Mul(b)

		assert.True(t, g.Mul(a.Add(b)).Equal(pa.Add(pb)))
		assert.True(t, g.Mul(a.Sub(b)).Equal(pa.Sub(pb)))
		assert.True(t, g.Mul(a.Mul(b)).Equal(pa.Mul(b)))
		assert.True(t, pa.Double().Equal(pa.Add(pa)))
		assert.True(t, pa.MulInt(bigint.U64(2)).Equal(pa.Double()))
		assert.True(t, pa.Add(pb).Equal(pb.Add(pa)))
		assert.True(t, pa.Add(id).Equal(pa))
		assert.True(t, pa.Add(pa.Neg()).IsIdentity())

		pub, ok := pb.Public()
		require.True(t, ok)
		assert.True(t, pa.AddPublic(pub).Equal(pa.Add(pb)))
		assert.True(t, pa.SubPublic(pub).Equal(pa.Sub(pb)))
	}
}

func TestCoordinateFieldsAgree(t *testing.T) {
	r := testReader(2)
	var s Scalar
	var pm PointMontgomery
	for i := 0; i < 4; i++ {
		k, err := s.Rand(r)
		require.NoError(t, err)

		u, ok := Generator().Mul(k).Public()
		require.True(t, ok)
		um, ok := pm.Generator().Mul(k).Public()
		require.True(t, ok)
		assert.Equal(t, Encode(u), encodeAffine(um.Affine()))
	}
}

func TestMatchesFilippo(t *testing.T) {
	r := testReader(3)
	var s Scalar
	for i := 0; i < 8; i++ {
		k, err := s.Rand(r)
		require.NoError(t, err)
		fk, err := ScalarToFilippo(k)
		require.NoError(t, err)

		want := new(filippo.Point).ScalarBaseMult(fk)
		got, ok := Generator().Mul(k).Public()
		require.True(t, ok)
		enc := Encode(got)
		assert.Equal(t, want.Bytes(), enc[:])

		back, err := FromFilippo(want)
		require.NoError(t, err)
		assert.True(t, back.Equal(got))

		fp, err := ToFilippo(got)
		require.NoError(t, err)
		assert.Equal(t, 1, fp.Equal(want))

		k2, err := ScalarFromFilippo(fk)
		require.NoError(t, err)
		assert.Equal(t, k, k2)
	}
}

func TestScalarFromUniformBytes(t *testing.T) {
	r := testReader(4)
	buf := make([]byte, 64)
	for i := 0; i < 16; i++ {
		_, err := io.ReadFull(r, buf)
		require.NoError(t, err)
		want, err := filippo.NewScalar().SetUniformBytes(buf)
		require.NoError(t, err)
		got, err := ScalarFromUniformBytes(buf)
		require.NoError(t, err)
		b := ScalarBytes(got)
		assert.Equal(t, want.Bytes(), b[:])
	}

	_, err := ScalarFromUniformBytes(buf[:63])
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestEncoding(t *testing.T) {
	t.Run("known multiples", func(t *testing.T) {
		tests := []struct {
			k    uint64
			want string
		}{
			{1, "5866666666666666666666666666666666666666666666666666666666666666"},
			{2, "c9a3f86aae465f0e56513864510f3997561fa2c9e85ea21dc2292309f3cd6022"},
			{12345, "ef4f62f8479733ad879cfaced3c89a9c39dd4fc795ef2efa1c3eafe4d729a081"},
		}
		for _, tt := range tests {
			u, ok := Generator().Mul(scalarFromUint64(tt.k)).Public()
			require.True(t, ok)
			b := Encode(u)
			assert.Equal(t, tt.want, hex.EncodeToString(b[:]))

			back, err := Decode(b[:])
			require.NoError(t, err)
			assert.True(t, back.Equal(u))
		}
	})

	t.Run("identity", func(t *testing.T) {
		var p Point
		u, ok := p.Identity().Public()
		require.True(t, ok)
		b := Encode(u)
		assert.Equal(t, "01"+hex.EncodeToString(make([]byte, 31)), hex.EncodeToString(b[:]))
		back, err := Decode(b[:])
		require.NoError(t, err)
		assert.True(t, back.Point().IsIdentity())
	})

	t.Run("rejects", func(t *testing.T) {
		_, err := Decode(make([]byte, 31))
		assert.ErrorIs(t, err, ErrInvalidLength)

		// y = p
		_, err = Decode(mustHex(t, "edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f"))
		assert.ErrorIs(t, err, ErrNonCanonical)

		// y = 2 has no x
		_, err = Decode(mustHex(t, "0200000000000000000000000000000000000000000000000000000000000000"))
		assert.ErrorIs(t, err, ErrNotOnCurve)

		// x = 0 with the sign bit set
		_, err = Decode(mustHex(t, "0100000000000000000000000000000000000000000000000000000000000080"))
		assert.ErrorIs(t, err, ErrNonCanonical)
	})

	t.Run("small order point is not in the subgroup", func(t *testing.T) {
		// (0, -1) has order 2.
		u, err := Decode(mustHex(t, "ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f"))
		require.NoError(t, err)
		assert.False(t, u.IsValid())
		assert.True(t, u.Point().Double().IsIdentity())
	})
}

func TestScalarBytes(t *testing.T) {
	k := scalarFromUint64(0x0102030405060708)
	b := ScalarBytes(k)
	assert.Equal(t, "0807060504030201", hex.EncodeToString(b[:8]))

	back, err := ScalarFromBytes(b[:])
	require.NoError(t, err)
	assert.Equal(t, k, back)

	// l itself
	_, err = ScalarFromBytes(mustHex(t, "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"))
	assert.ErrorIs(t, err, ErrNonCanonical)

	_, err = ScalarFromBytes(b[:31])
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestMSM(t *testing.T) {
	r := testReader(5)
	var s Scalar
	var p Point
	g := Generator()

	bases := make([]Point, 5)
	pubs := make([]Public, 5)
	scalars := make([]Scalar, 5)
	want := p.Identity()
	for i := range bases {
		b, err := s.Rand(r)
		require.NoError(t, err)
		k, err := s.Rand(r)
		require.NoError(t, err)
		bases[i] = g.Mul(b)
		var ok bool
		pubs[i], ok = bases[i].Public()
		require.True(t, ok)
		scalars[i] = k
		want = want.Add(bases[i].Mul(k))
	}

	assert.True(t, p.MSM(bases, scalars).Equal(want))
	assert.True(t, p.MSMPublic(pubs, scalars).Equal(want))
	assert.True(t, p.MSM(nil, nil).IsIdentity())
	assert.Panics(t, func() { p.MSM(bases, scalars[:4]) })

	terms := make([]Point, len(bases))
	for i := range bases {
		terms[i] = bases[i].Mul(scalars[i])
	}
	assert.True(t, ec.Sum(terms...).Equal(want))
}

func TestBatchGenerators(t *testing.T) {
	var p Point

	fixed, err := p.BatchGenerators(4, nil)
	require.NoError(t, err)
	again, err := p.BatchGenerators(4, nil)
	require.NoError(t, err)
	assert.Equal(t, fixed, again)

	seeded, err := p.BatchGenerators(4, testReader(6))
	require.NoError(t, err)

	seen := map[Public]bool{Generator(): true}
	for _, g := range append(fixed, seeded...) {
		assert.False(t, seen[g], "duplicate generator %s", g)
		seen[g] = true
		assert.True(t, g.IsValid())
		assert.False(t, g.Point().IsIdentity())
	}

	_, err = p.BatchGenerators(1, iotest.ErrReader(errors.New("boom")))
	assert.Error(t, err)
}

func TestRandomElement(t *testing.T) {
	var p Point
	u, err := p.RandomElement(testReader(7))
	require.NoError(t, err)
	assert.True(t, u.IsValid())

	_, err = p.RandomElement(iotest.ErrReader(errors.New("boom")))
	assert.Error(t, err)
}
