package ec

import "github.com/smallyu/go-ecarith/pkg/ff"

// CurveOperations is a curve law for the point representation P.
type CurveOperations[E ff.Field[E], P Coordinates[E, P]] interface {
	// Unified reports whether Add is valid for every pair of inputs,
	// including equal points and the identity.
	Unified() bool
	Identity() P
	Neg(p P) P
	Add(p, q P) P
	// AddAffine is a mixed addition with a normalized second operand.
	AddAffine(p P, q Affine[E]) P
	Double(p P) P
}

// IsIdentity reports whether p equals the identity of c.
func IsIdentity[E ff.Field[E], P Coordinates[E, P], C CurveOperations[E, P]](c C, p P) bool {
	return p.Equal(c.Identity())
}
