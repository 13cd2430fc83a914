// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ecc

import "math/big"

// Element is the capability contract a base-field element type must satisfy.
//
// E is the (pointer) element type itself, and every operation follows the
// destination convention of the gnark-crypto field packages: z.Op(x, y) sets z
// and returns it. The gnark-crypto *fp.Element and *fr.Element types satisfy
// this contract directly.
//
// Sqrt follows the gnark-crypto convention: it returns z set to a square root
// of x when one exists, and the nil element otherwise.
type Element[E any] interface {
	Set(x E) E
	SetZero() E
	SetOne() E
	SetRandom() (E, error)

	Add(x, y E) E
	Sub(x, y E) E
	Neg(x E) E
	Double(x E) E
	Mul(x, y E) E
	Square(x E) E
	Inverse(x E) E
	Sqrt(x E) E

	IsZero() bool
	IsOne() bool
	Equal(x E) bool
	String() string
}

// ScalarElement is the capability contract a scalar-field element type must
// satisfy. On top of the base field operations it converts to and from the
// canonical big-integer representation; BigInt is the bridge to the MSB-first
// bit expansion used by the subgroup verifier.
type ScalarElement[E any] interface {
	Element[E]

	SetBigInt(v *big.Int) E
	BigInt(res *big.Int) *big.Int
}
