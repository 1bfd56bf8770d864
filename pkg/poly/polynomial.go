// Package poly implements polynomials over a prime field and Feldman
// commitments to them.
package poly

import (
	"errors"
	"fmt"
	"io"

	"github.com/smallyu/go-ecarith/pkg/ec"
	"github.com/smallyu/go-ecarith/pkg/ff"
)

var (
	// ErrNegativeDegree is returned by New for a degree below zero.
	ErrNegativeDegree = errors.New("poly: negative degree")
	// ErrLengthMismatch is returned by InterpolateAtZero when xs and ys
	// differ in length.
	ErrLengthMismatch = errors.New("poly: mismatched lengths")
	// ErrDuplicateX is returned by InterpolateAtZero when two points share
	// an x coordinate.
	ErrDuplicateX = errors.New("poly: duplicate evaluation point")
	// ErrNoPoints is returned by InterpolateAtZero for empty input.
	ErrNoPoints = errors.New("poly: no evaluation points")
)

// Polynomial represents f(x) = a_0 + a_1*x + ... + a_t*x^t.
type Polynomial[E ff.Field[E]] struct {
	Coefficients []E
}

// New samples a polynomial of the given degree whose constant term is
// secret. If secret is nil, the constant term is random too.
func New[E ff.Field[E]](degree int, secret *E, rng io.Reader) (*Polynomial[E], error) {
	if degree < 0 {
		return nil, ErrNegativeDegree
	}
	var f E
	coeffs := make([]E, degree+1)
	for i := range coeffs {
		if i == 0 && secret != nil {
			coeffs[0] = *secret
			continue
		}
		c, err := f.Rand(rng)
		if err != nil {
			return nil, fmt.Errorf("poly: sample coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return &Polynomial[E]{Coefficients: coeffs}, nil
}

// Degree returns t, the index of the last coefficient.
func (p *Polynomial[E]) Degree() int {
	return len(p.Coefficients) - 1
}

// Evaluate calculates f(x) with Horner's method.
func (p *Polynomial[E]) Evaluate(x E) E {
	result := x.Zero()
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.Coefficients[i])
	}
	return result
}

// EvaluateMulti calculates f(x) for multiple x values.
func (p *Polynomial[E]) EvaluateMulti(xs []E) []E {
	results := make([]E, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}

// InterpolateAtZero returns f(0) for the polynomial of degree len(xs)-1
// through the points (xs[i], ys[i]).
func InterpolateAtZero[E ff.Field[E]](xs, ys []E) (E, error) {
	var f E
	if len(xs) != len(ys) {
		return f, ErrLengthMismatch
	}
	if len(xs) == 0 {
		return f, ErrNoPoints
	}
	result := f.Zero()
	for i, xi := range xs {
		// L_i(0) = prod_{j != i} x_j / (x_j - x_i)
		num, den := f.One(), f.One()
		for j, xj := range xs {
			if i == j {
				continue
			}
			num = num.Mul(xj)
			den = den.Mul(xj.Sub(xi))
		}
		inv, ok := den.Inverse()
		if !ok {
			return f, ErrDuplicateX
		}
		result = result.Add(ys[i].Mul(num).Mul(inv))
	}
	return result, nil
}

// Commit returns the Feldman commitments a_i*G to the coefficients of p.
func Commit[P any, U comparable, S ff.Field[S], G ec.PrimeGroupConfig[P, U, S]](p *Polynomial[S]) []ec.GroupEC[P, U, S, G] {
	var x ec.GroupEC[P, U, S, G]
	g := x.Generator()
	out := make([]ec.GroupEC[P, U, S, G], len(p.Coefficients))
	for i, c := range p.Coefficients {
		out[i] = g.Mul(c)
	}
	return out
}

// VerifyShare checks y*G against the commitments evaluated at x.
func VerifyShare[P any, U comparable, S ff.Field[S], G ec.PrimeGroupConfig[P, U, S]](commitments []ec.GroupEC[P, U, S, G], x, y S) bool {
	var zero ec.GroupEC[P, U, S, G]
	acc := zero.Identity()
	for i := len(commitments) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(commitments[i])
	}
	return acc.Equal(zero.Generator().Mul(y))
}
