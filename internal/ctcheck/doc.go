// Package ctcheck holds static checks over the arithmetic packages.
//
// The checks run as tests: they load pkg/bigint, pkg/ff and pkg/ec with
// golang.org/x/tools/go/packages and reject constructs that make the running
// time depend on limb values: ordered comparisons of limbs, bytes.Equal and
// == on byte arrays.
package ctcheck
