// SPDX-License-Identifier: MIT

package matrix

import "math"

const opAllClose = "AllClose"

// closeEnough reports |x-y| ≤ atol + rtol*|y| with exact matching for
// same-signed infinities.
func closeEnough(x, y, rtol, atol float64) bool {
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y) // false for NaN on either side
}

// ewAllClose is the kernel behind AllClose.
// Implementation:
//   - Stage 1: reject NaN/Inf tolerances, normalize signs.
//   - Stage 2: validate operands (non-nil, same shape).
//   - Stage 3: flat scan for *Dense pairs, i→j via At otherwise; early exit
//     on the first violation.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}
