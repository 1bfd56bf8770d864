package secp256k1

import (
	"encoding/hex"
	"errors"
	"io"
	"math/rand/v2"
	"testing"
	"testing/iotest"

	"github.com/btcsuite/btcd/btcec/v2"
	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecarith/pkg/bigint"
	"github.com/smallyu/go-ecarith/pkg/ec"
)

var orderMinusOne = newInt(13822214165235122496, 13451932020343611451, 18446744073709551614, 18446744073709551615)

func testReader(seed byte) io.Reader {
	var key [32]byte
	key[0] = seed
	return rand.NewChaCha8(key)
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func checkGroupLaws[P any, G ec.PrimeGroupConfig[P, ec.Affine[Fp], Scalar]](t *testing.T, seed byte) {
	var x ec.GroupEC[P, ec.Affine[Fp], Scalar, G]
	var s Scalar
	r := testReader(seed)
	g := x.Generator()
	id := x.Identity()

	assert.True(t, g.Point().MulInt(s.Modulus()).IsIdentity())
	assert.True(t, g.Point().MulInt(orderMinusOne).Equal(g.Point().Neg()))
	assert.True(t, g.Mul(s.One().Neg()).Equal(g.Point().Neg()))
	assert.True(t, g.IsValid())

	for i := 0; i < 6; i++ {
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
		assert.True(t, id.Add(pa).Equal(pa))
		assert.True(t, pa.Add(pa.Neg()).IsIdentity())

		pub, ok := pa.Public()
		require.True(t, ok)
		assert.True(t, pa.AddPublic(pub).Equal(pa.Double()))
		assert.True(t, pa.Neg().AddPublic(pub).IsIdentity())
		assert.True(t, id.AddPublic(pub).Equal(pa))
		assert.True(t, pa.SubPublic(pub).IsIdentity())
	}

	_, ok := id.Public()
	assert.False(t, ok)
	assert.Equal(t, "identity", id.String())
}

func TestGroupLaws(t *testing.T) {
	t.Run("jacobian", func(t *testing.T) {
		checkGroupLaws[ec.Jacobian[Fp], Group](t, 1)
	})
	t.Run("complete", func(t *testing.T) {
		checkGroupLaws[ec.Projective[Fp], CompleteGroup](t, 2)
	})
}

func TestLawsAgree(t *testing.T) {
	r := testReader(3)
	var s Scalar
	var cp CompletePoint
	type solinasGroup = ec.SubGroup[FpSolinas, ec.Jacobian[FpSolinas], Scalar, Int, Curve[FpSolinas]]
	var sp ec.GroupEC[ec.Jacobian[FpSolinas], ec.Affine[FpSolinas], Scalar, solinasGroup]

	for i := 0; i < 4; i++ {
		k, err := s.Rand(r)
		require.NoError(t, err)

		u, ok := Generator().Mul(k).Public()
		require.True(t, ok)
		cu, ok := cp.Generator().Mul(k).Public()
		require.True(t, ok)
		su, ok := sp.Generator().Mul(k).Public()
		require.True(t, ok)

		assert.True(t, FromComplete(cu).Equal(u))
		assert.True(t, ToComplete(u).Equal(cu))
		assert.Equal(t, u.Affine().X.AsInt(), su.Affine().X.AsInt())
		assert.Equal(t, u.Affine().Y.AsInt(), su.Affine().Y.AsInt())
	}
}

func TestEncoding(t *testing.T) {
	var s Scalar
	tests := []struct {
		name string
		k    Scalar
		want string
	}{
		{"1", s.FromUint64(1), "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"},
		{"2", s.FromUint64(2), "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"},
		{"3", s.FromUint64(3), "02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"},
		{"12345", s.FromUint64(12345), "03f01d6b9018ab421dd410404cb869072065522bf85734008f105cf385a023a80f"},
		{"n-1", s.One().Neg(), "0379be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := Generator().Mul(tt.k).Public()
			require.True(t, ok)
			b := Encode(u)
			assert.Equal(t, tt.want, hex.EncodeToString(b[:]))

			back, err := Decode(b[:])
			require.NoError(t, err)
			assert.True(t, back.Equal(u))

			full := EncodeUncompressed(u)
			back, err = Decode(full[:])
			require.NoError(t, err)
			assert.True(t, back.Equal(u))
		})
	}
}

func TestDecodeRejects(t *testing.T) {
	g := Encode(Generator())
	full := EncodeUncompressed(Generator())

	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Decode(g[:32])
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Decode(append([]byte{0x00}, g[1:]...))
	assert.ErrorIs(t, err, ErrInvalidPrefix)

	// x = p
	_, err = Decode(mustHex(t, "02fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"))
	assert.ErrorIs(t, err, ErrNonCanonical)

	// x = 0 is not the abscissa of any point
	_, err = Decode(mustHex(t, "020000000000000000000000000000000000000000000000000000000000000000"))
	assert.ErrorIs(t, err, ErrNotOnCurve)

	bad := full
	bad[64] ^= 1
	_, err = Decode(bad[:])
	assert.ErrorIs(t, err, ErrNotOnCurve)
}

func TestMatchesBtcec(t *testing.T) {
	r := testReader(4)
	var s Scalar
	for i := 0; i < 8; i++ {
		k, err := s.Rand(r)
		require.NoError(t, err)
		kb := ScalarBytes(k)

		_, pub := btcec.PrivKeyFromBytes(kb[:])
		got, ok := Generator().Mul(k).Public()
		require.True(t, ok)

		b := Encode(got)
		assert.Equal(t, pub.SerializeCompressed(), b[:])
		full := EncodeUncompressed(got)
		assert.Equal(t, pub.SerializeUncompressed(), full[:])

		parsed, err := btcec.ParsePubKey(full[:])
		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(pub))
	}
}

func TestMatchesDecred(t *testing.T) {
	r := testReader(5)
	var s Scalar
	for i := 0; i < 8; i++ {
		k, err := s.Rand(r)
		require.NoError(t, err)

		var j decred.JacobianPoint
		decred.ScalarBaseMultNonConst(ScalarToModN(k), &j)
		j.ToAffine()
		want := decred.NewPublicKey(&j.X, &j.Y)

		got, ok := Generator().Mul(k).Public()
		require.True(t, ok)
		pk, err := ToPublicKey(got)
		require.NoError(t, err)
		assert.True(t, pk.IsEqual(want))

		back, err := FromPublicKey(want)
		require.NoError(t, err)
		assert.True(t, back.Equal(got))

		assert.Equal(t, k, ScalarFromModN(ScalarToModN(k)))
	}
}

func TestScalarBytes(t *testing.T) {
	var s Scalar
	k := s.FromUint64(0x0102030405060708)
	b := ScalarBytes(k)
	assert.Equal(t, "0102030405060708", hex.EncodeToString(b[24:]))

	back, err := ScalarFromBytes(b[:])
	require.NoError(t, err)
	assert.Equal(t, k, back)

	_, err = ScalarFromBytes(mustHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"))
	assert.ErrorIs(t, err, ErrNonCanonical)
	_, err = ScalarFromBytes(b[:31])
	assert.ErrorIs(t, err, ErrInvalidLength)
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
	}

	var cp CompletePoint
	complete, err := cp.BatchGenerators(4, nil)
	require.NoError(t, err)
	for i := range complete {
		assert.True(t, FromComplete(complete[i]).Equal(fixed[i]))
	}

	_, err = p.BatchGenerators(2, iotest.ErrReader(errors.New("boom")))
	assert.Error(t, err)
}

func TestMSM(t *testing.T) {
	r := testReader(7)
	var s Scalar
	var p Point
	g := Generator()

	n := 4
	bases := make([]Public, n)
	scalars := make([]Scalar, n)
	want := p.Identity()
	for i := range bases {
		b, err := s.Rand(r)
		require.NoError(t, err)
		k, err := s.Rand(r)
		require.NoError(t, err)
		var ok bool
		bases[i], ok = g.Mul(b).Public()
		require.True(t, ok)
		scalars[i] = k
		want = want.Add(bases[i].Mul(k))
	}
	assert.True(t, p.MSMPublic(bases, scalars).Equal(want))

	// Repeated bases hit the doubling case of the Jacobian addition.
	same := []Public{g, g, g}
	ks := []Scalar{s.One(), s.One(), s.One()}
	assert.True(t, p.MSMPublic(same, ks).Equal(g.Point().MulInt(newInt(3, 0, 0, 0))))
	assert.Panics(t, func() { p.MSMPublic(same, ks[:2]) })
}
