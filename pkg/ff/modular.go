package ff

import (
	"fmt"
	"io"

	"github.com/smallyu/go-ecarith/pkg/bigint"
)

// addMod returns x + y mod m for x, y < m. The corrected value is kept when
// the carry of the addition equals the borrow of the correction.
func addMod[L bigint.Limb, A bigint.Limbs[L]](x, y, m bigint.Int[L, A]) bigint.Int[L, A] {
	sum, c1 := x.AddCarry(y, 0)
	diff, c2 := sum.SubBorrow(m, 0)
	return bigint.Select(1^c1^c2, diff, sum)
}

// subMod returns x - y mod m for x, y < m.
func subMod[L bigint.Limb, A bigint.Limbs[L]](x, y, m bigint.Int[L, A]) bigint.Int[L, A] {
	diff, borrow := x.SubBorrow(y, 0)
	fixed, _ := diff.AddCarry(m, 0)
	return bigint.Select(borrow, fixed, diff)
}

// sample draws integers with the bit length of m until one is <= m.
// Trimming to the bit length keeps the acceptance rate above one half.
func sample[L bigint.Limb, A bigint.Limbs[L]](r io.Reader, m bigint.Int[L, A]) (bigint.Int[L, A], error) {
	size := bigint.LimbBytes[L]()
	buf := make([]byte, m.Len()*size)
	excess := m.LeadingZeros()
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return bigint.Int[L, A]{}, fmt.Errorf("ff: read randomness: %w", err)
		}
		v, err := bigint.FromBytesBE[L, A](buf)
		if err != nil {
			return v, err
		}
		v = v.Shr(excess)
		if v.LessOrEqual(m) {
			return v, nil
		}
	}
}
