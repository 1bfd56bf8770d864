package benchmark

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/smallyu/go-ecarith/pkg/curves/edwards25519"
	"github.com/smallyu/go-ecarith/pkg/curves/secp256k1"
	"github.com/smallyu/go-ecarith/pkg/ff"
)

func randomField[E ff.Field[E]](b *testing.B, seed byte) E {
	var f E
	v, err := f.Rand(rand.NewChaCha8([32]byte{seed}))
	if err != nil {
		b.Fatal(err)
	}
	return v
}

func benchField[E ff.Field[E]](b *testing.B) {
	x, y := randomField[E](b, 1), randomField[E](b, 2)
	b.Run("Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			x = x.Mul(y)
		}
	})
	b.Run("Square", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			x = x.Square()
		}
	})
	b.Run("Inverse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			x, _ = x.Inverse()
		}
	})
}

func BenchmarkField(b *testing.B) {
	b.Run("edwards25519/Solinas", benchField[edwards25519.Fp])
	b.Run("edwards25519/Montgomery", benchField[edwards25519.FpMontgomery])
	b.Run("secp256k1/Montgomery", benchField[secp256k1.Fp])
	b.Run("secp256k1/Solinas", benchField[secp256k1.FpSolinas])
}

func BenchmarkScalarMul(b *testing.B) {
	b.Run("edwards25519", func(b *testing.B) {
		k := randomField[edwards25519.Scalar](b, 3)
		g := edwards25519.Generator()
		for i := 0; i < b.N; i++ {
			g.Mul(k)
		}
	})
	b.Run("secp256k1", func(b *testing.B) {
		k := randomField[secp256k1.Scalar](b, 4)
		g := secp256k1.Generator()
		for i := 0; i < b.N; i++ {
			g.Mul(k)
		}
	})
	b.Run("secp256k1/complete", func(b *testing.B) {
		k := randomField[secp256k1.Scalar](b, 5)
		g := secp256k1.ToComplete(secp256k1.Generator())
		for i := 0; i < b.N; i++ {
			g.Mul(k)
		}
	})
}

func BenchmarkMSM(b *testing.B) {
	for _, n := range []int{2, 8, 32} {
		b.Run(fmt.Sprintf("secp256k1/%d", n), func(b *testing.B) {
			var p secp256k1.Point
			bases, err := p.BatchGenerators(n, nil)
			if err != nil {
				b.Fatal(err)
			}
			scalars := make([]secp256k1.Scalar, n)
			for i := range scalars {
				scalars[i] = randomField[secp256k1.Scalar](b, byte(i))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p.MSMPublic(bases, scalars)
			}
		})
	}
}
