// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ecc

import (
	"math/big"
)

var (
	zero, one, three big.Int
)

func init() {
	one.SetUint64(1)
	three.SetUint64(3)
}

// BigEndianBits returns the bits of n most significant first, without leading
// zeros. This is the canonical bit-order contract between the framework and
// point implementations: feeding the result to AffinePoint.MulBits computes
// the n-multiple of the point. n must not be negative.
func BigEndianBits(n *big.Int) []bool {
	l := n.BitLen()
	bits := make([]bool, l)
	for i := 0; i < l; i++ {
		bits[i] = n.Bit(l-1-i) == 1
	}
	return bits
}

// NafDecomposition gets the naf decomposition of a big number
func NafDecomposition(a *big.Int, result []int8) int {

	length := 0

	// some buffers
	var buf, aCopy big.Int
	aCopy.Set(a)

	for aCopy.Cmp(&zero) != 0 {

		// if aCopy % 2 == 0
		buf.And(&aCopy, &one)

		// aCopy even
		if buf.Cmp(&zero) == 0 {
			result[length] = 0
		} else { // aCopy odd
			buf.And(&aCopy, &three)
			if buf.Cmp(&three) == 0 {
				result[length] = -1
				aCopy.Add(&aCopy, &one)
			} else {
				result[length] = 1
			}
		}
		aCopy.Rsh(&aCopy, 1)
		length++
	}
	return length
}
