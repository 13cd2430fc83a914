// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ecc

// AffinePoint is the view of an affine curve point the subgroup verifier
// needs: an identity test and scalar multiplication driven by a bit sequence,
// most significant bit first (double-and-add). P is the point type itself.
// The point engine in ecc/sw satisfies this contract; so does any external
// point implementation following the same bit-order convention (see
// BigEndianBits).
type AffinePoint[P any] interface {
	IsZero() bool
	MulBits(bits []bool) P
}

// SubgroupChecker is implemented by parameter sets with a faster subgroup
// membership test (typically an efficiently computable endomorphism). An
// implementation must accept and reject exactly the same points as the
// generic order check it replaces.
type SubgroupChecker[P any] interface {
	IsInCorrectSubgroup(p P) bool
}

// IsInCorrectSubgroupAssumingOnCurve reports whether p lies in the subgroup
// of prime order r, where r is the scalar field characteristic of c: a point
// on the curve is in the subgroup iff p·r is the identity.
//
// The caller guarantees p satisfies the curve equation; no on-curve check is
// performed and the verdict is undefined for points off the curve. Parameter
// sets implementing SubgroupChecker take over the computation.
func IsInCorrectSubgroupAssumingOnCurve[P AffinePoint[P], B Element[B], S ScalarElement[S]](c SWCurveParams[B, S], p P) bool {
	if sc, ok := c.(SubgroupChecker[P]); ok {
		return sc.IsInCorrectSubgroup(p)
	}
	return p.MulBits(BigEndianBits(c.ScalarFieldModulus())).IsZero()
}
