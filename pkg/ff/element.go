package ff

import (
	"fmt"
	"io"
	"slices"

	"github.com/smallyu/go-ecarith/pkg/bigint"
)

// Element is a field element stored in the representation chosen by S.
// The zero value is the field's zero. Elements are comparable, and == agrees
// with Equal because every operation leaves the stored value reduced.
type Element[I Repr, S Operations[I]] struct {
	v I
}

// FromRaw wraps a value already in S's internal representation.
func FromRaw[I Repr, S Operations[I]](v I) Element[I, S] {
	return Element[I, S]{v: v}
}

// FromInt maps an integer into the field.
func FromInt[I Repr, S Operations[I]](v I) Element[I, S] {
	var s S
	return Element[I, S]{v: s.Reduce(v)}
}

// Raw returns the internal representation.
func (x Element[I, S]) Raw() I {
	return x.v
}

func (Element[I, S]) Zero() Element[I, S] {
	var s S
	return Element[I, S]{v: s.Zero()}
}

func (Element[I, S]) One() Element[I, S] {
	var s S
	return Element[I, S]{v: s.One()}
}

func (Element[I, S]) Modulus() I {
	var s S
	return s.Modulus()
}

func (x Element[I, S]) AsInt() I {
	var s S
	return s.AsInt(x.v)
}

func (Element[I, S]) FromInt(v I) Element[I, S] {
	return FromInt[I, S](v)
}

// FromUint64 maps a small public constant into the field.
func (x Element[I, S]) FromUint64(v uint64) Element[I, S] {
	one := x.One()
	res := x.Zero()
	for i := 63; i >= 0; i-- {
		res = res.Double()
		if v>>i&1 == 1 {
			res = res.Add(one)
		}
	}
	return res
}

func (x Element[I, S]) IsZero() bool {
	var s S
	return s.IsZero(x.v)
}

func (x Element[I, S]) ZeroBit() int {
	var s S
	return s.ZeroBit(x.v)
}

func (x Element[I, S]) Equal(y Element[I, S]) bool {
	var s S
	return s.Equal(x.v, y.v)
}

func (x Element[I, S]) Add(y Element[I, S]) Element[I, S] {
	var s S
	return Element[I, S]{v: s.Add(x.v, y.v)}
}

func (x Element[I, S]) Sub(y Element[I, S]) Element[I, S] {
	var s S
	return Element[I, S]{v: s.Sub(x.v, y.v)}
}

func (x Element[I, S]) Mul(y Element[I, S]) Element[I, S] {
	var s S
	return Element[I, S]{v: s.Mul(x.v, y.v)}
}

// Div returns x / y. It panics if y is zero.
func (x Element[I, S]) Div(y Element[I, S]) Element[I, S] {
	inv, ok := y.Inverse()
	if !ok {
		panic("ff: division by zero")
	}
	return x.Mul(inv)
}

func (x Element[I, S]) Neg() Element[I, S] {
	var s S
	return Element[I, S]{v: s.Neg(x.v)}
}

func (x Element[I, S]) Square() Element[I, S] {
	var s S
	return Element[I, S]{v: s.Square(x.v)}
}

func (x Element[I, S]) Double() Element[I, S] {
	var s S
	return Element[I, S]{v: s.Double(x.v)}
}

func (x Element[I, S]) Inverse() (Element[I, S], bool) {
	var s S
	v, ok := s.Inverse(x.v)
	return Element[I, S]{v: v}, ok
}

// Pow returns x^e with a fixed 64-step square-and-multiply. It branches on
// the bits of e.
func (x Element[I, S]) Pow(e uint64) Element[I, S] {
	res := x.One()
	for i := 63; i >= 0; i-- {
		res = res.Square()
		if e>>i&1 == 1 {
			res = res.Mul(x)
		}
	}
	return res
}

// Exp returns x^e using the strategy's ladder.
func (x Element[I, S]) Exp(e bigint.Integer) Element[I, S] {
	var s S
	return Element[I, S]{v: s.Exp(x.v, e)}
}

func (x Element[I, S]) Select(y Element[I, S], cond int) Element[I, S] {
	var s S
	return Element[I, S]{v: s.Select(x.v, y.v, cond)}
}

func (Element[I, S]) Rand(r io.Reader) (Element[I, S], error) {
	var s S
	v, err := s.Rand(r)
	if err != nil {
		return Element[I, S]{}, err
	}
	return Element[I, S]{v: v}, nil
}

func (x Element[I, S]) Bytes() []byte {
	return slices.Collect(x.AsInt().BytesBE())
}

func (x Element[I, S]) String() string {
	return fmt.Sprint(x.AsInt())
}
