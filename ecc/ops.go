// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ecc

// AMultiplier is implemented by parameter sets whose a coefficient has special
// structure (a = 0, a = -1, a = -5, ...) and for which the coefficient product
// specializes to something cheaper than a full field multiplication. An
// implementation must produce the exact same result as the generic formula
// z = e · a for every input.
type AMultiplier[B any] interface {
	MulByA(z, e B) B
}

// MulByA sets z to e multiplied by the model's a coefficient and returns z.
// The formula is shared by the short Weierstrass and twisted Edwards forms.
// Parameter sets implementing AMultiplier take over the computation.
func MulByA[B Element[B]](c interface{ CoeffA() B }, z, e B) B {
	if m, ok := c.(AMultiplier[B]); ok {
		return m.MulByA(z, e)
	}
	return z.Mul(e, c.CoeffA())
}

// AddB sets z to e plus the Weierstrass b coefficient and returns z. When
// b is zero the field addition is skipped and e is copied into z unchanged;
// the result is identical to the general formula for every b.
func AddB[B Element[B], S ScalarElement[S]](c SWCurveParams[B, S], z, e B) B {
	b := c.CoeffB()
	if b.IsZero() {
		return z.Set(e)
	}
	return z.Add(e, b)
}
