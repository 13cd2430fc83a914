// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ecc

import "math/big"

// CurveParams fixes the base and scalar fields of a curve model.
//
// B is the base-field element type (curve coordinates), S the scalar-field
// element type (subgroup scalars). Implementations are immutable after
// construction: every accessor returns a fresh value the caller may mutate
// freely. The three model contracts below extend CurveParams; a concrete curve
// implements exactly one of them as its primary form (almost always short
// Weierstrass for the externally exposed group) and, when it relies on the
// twisted Edwards / Montgomery isomorphism, supplies both linked sets.
type CurveParams[B Element[B], S ScalarElement[S]] interface {
	// ID identifies the curve; UNKNOWN for ad-hoc instantiations.
	ID() ID

	// BaseField returns a new zero element of the coordinate field.
	BaseField() B

	// ScalarField returns a new zero element of the scalar field.
	ScalarField() S

	// ScalarFieldModulus returns the characteristic r of the scalar field,
	// i.e. the order of the prime subgroup. The returned value is a copy.
	ScalarFieldModulus() *big.Int
}

// SWCurveParams describes a curve in short Weierstrass form
//
//	y² = x³ + a·x + b
type SWCurveParams[B Element[B], S ScalarElement[S]] interface {
	CurveParams[B, S]

	// CoeffA returns coefficient a of the Weierstrass equation.
	CoeffA() B

	// CoeffB returns coefficient b of the Weierstrass equation.
	CoeffB() B

	// Cofactor returns the ratio between the curve order and the order of
	// the prime subgroup.
	Cofactor() *big.Int

	// CofactorInv returns the inverse of the cofactor in the scalar field.
	CofactorInv() S

	// Generator returns the affine coordinates of the fixed generator of
	// the prime subgroup.
	Generator() (x, y B)
}

// TECurveParams describes a curve in twisted Edwards form
//
//	a·x² + y² = 1 + d·x²·y²
//
// Every twisted Edwards parameter set declares the Montgomery parameter set it
// is birationally equivalent to, over the same base field. The pair must link
// back to each other; the framework trusts curve authors on this and never
// re-checks it at runtime (see AssertLinkageConsistent for an opt-in,
// debug-only verification). An inconsistent pair produces silently wrong
// conversions, not errors.
type TECurveParams[B Element[B], S ScalarElement[S]] interface {
	CurveParams[B, S]

	// CoeffA returns coefficient a of the twisted Edwards equation.
	CoeffA() B

	// CoeffD returns coefficient d of the twisted Edwards equation.
	CoeffD() B

	// Cofactor returns the ratio between the curve order and the order of
	// the prime subgroup.
	Cofactor() *big.Int

	// CofactorInv returns the inverse of the cofactor in the scalar field.
	CofactorInv() S

	// Generator returns the affine coordinates of the fixed generator of
	// the prime subgroup.
	Generator() (x, y B)

	// Montgomery returns the parameter set of the birationally equivalent
	// Montgomery curve.
	Montgomery() MontgomeryCurveParams[B, S]
}

// MontgomeryCurveParams describes a curve in Montgomery form
//
//	b·y² = x³ + a·x² + x
//
// The linkage contract of TECurveParams applies symmetrically.
type MontgomeryCurveParams[B Element[B], S ScalarElement[S]] interface {
	CurveParams[B, S]

	// CoeffA returns coefficient a of the Montgomery equation.
	CoeffA() B

	// CoeffB returns coefficient b of the Montgomery equation.
	CoeffB() B

	// TwistedEdwards returns the parameter set of the birationally
	// equivalent twisted Edwards curve.
	TwistedEdwards() TECurveParams[B, S]
}
