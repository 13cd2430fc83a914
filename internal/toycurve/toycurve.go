// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package toycurve instantiates the curve model contracts over toyfield with
// parameters small enough to verify by hand. Used by tests across the module.
//
// The three instantiations:
//
//   - SW: y² = x³ + 6x + 9 over F₁₀₁, prime order 83, cofactor 1,
//     generator (0, 3).
//   - SWSmallSubgroup: y² = x³ + 2x over F₉₇, order 116 = 4·29, prime
//     subgroup of order 29 generated by (1, 10). (0, 0) is the rational
//     2-torsion point every b = 0 curve has; (2, 20) has order 58. Both are
//     on the curve and outside the prime subgroup.
//   - TE / Montgomery: 4x² + y² = 1 + 7x²y² over F₁₀₁, order 92 = 4·23,
//     prime subgroup generated by (14, 93), linked to the Montgomery curve
//     66y² = x³ + 60x² + x derived by the standard birational map.
package toycurve

import (
	"math/big"

	"github.com/consensys/multicurve/ecc"
	"github.com/consensys/multicurve/internal/toyfield"
)

// swParams is a short Weierstrass parameter set over toyfield.
type swParams struct {
	base, scalar *toyfield.Field
	a, b         uint64
	cofactor     uint64
	cofactorInv  uint64
	genX, genY   uint64
}

func (c *swParams) ID() ecc.ID                       { return ecc.UNKNOWN }
func (c *swParams) BaseField() *toyfield.Element     { return c.base.Zero() }
func (c *swParams) ScalarField() *toyfield.Element   { return c.scalar.Zero() }
func (c *swParams) ScalarFieldModulus() *big.Int     { return c.scalar.Modulus() }
func (c *swParams) CoeffA() *toyfield.Element        { return c.base.FromUint64(c.a) }
func (c *swParams) CoeffB() *toyfield.Element        { return c.base.FromUint64(c.b) }
func (c *swParams) Cofactor() *big.Int               { return new(big.Int).SetUint64(c.cofactor) }
func (c *swParams) CofactorInv() *toyfield.Element   { return c.scalar.FromUint64(c.cofactorInv) }
func (c *swParams) Generator() (x, y *toyfield.Element) {
	return c.base.FromUint64(c.genX), c.base.FromUint64(c.genY)
}

// teParams is a twisted Edwards parameter set over toyfield.
type teParams struct {
	base, scalar *toyfield.Field
	a, d         uint64
	cofactor     uint64
	cofactorInv  uint64
	genX, genY   uint64
	mont         *montParams
}

func (c *teParams) ID() ecc.ID                     { return ecc.UNKNOWN }
func (c *teParams) BaseField() *toyfield.Element   { return c.base.Zero() }
func (c *teParams) ScalarField() *toyfield.Element { return c.scalar.Zero() }
func (c *teParams) ScalarFieldModulus() *big.Int   { return c.scalar.Modulus() }
func (c *teParams) CoeffA() *toyfield.Element      { return c.base.FromUint64(c.a) }
func (c *teParams) CoeffD() *toyfield.Element      { return c.base.FromUint64(c.d) }
func (c *teParams) Cofactor() *big.Int             { return new(big.Int).SetUint64(c.cofactor) }
func (c *teParams) CofactorInv() *toyfield.Element { return c.scalar.FromUint64(c.cofactorInv) }
func (c *teParams) Generator() (x, y *toyfield.Element) {
	return c.base.FromUint64(c.genX), c.base.FromUint64(c.genY)
}
func (c *teParams) Montgomery() ecc.MontgomeryCurveParams[*toyfield.Element, *toyfield.Element] {
	return c.mont
}

// montParams is a Montgomery parameter set over toyfield.
type montParams struct {
	base, scalar *toyfield.Field
	a, b         uint64
	te           *teParams
}

func (c *montParams) ID() ecc.ID                     { return ecc.UNKNOWN }
func (c *montParams) BaseField() *toyfield.Element   { return c.base.Zero() }
func (c *montParams) ScalarField() *toyfield.Element { return c.scalar.Zero() }
func (c *montParams) ScalarFieldModulus() *big.Int   { return c.scalar.Modulus() }
func (c *montParams) CoeffA() *toyfield.Element      { return c.base.FromUint64(c.a) }
func (c *montParams) CoeffB() *toyfield.Element      { return c.base.FromUint64(c.b) }
func (c *montParams) TwistedEdwards() ecc.TECurveParams[*toyfield.Element, *toyfield.Element] {
	return c.te
}

var (
	f101 = toyfield.New(101)
	f97  = toyfield.New(97)
	f83  = toyfield.New(83)
	f29  = toyfield.New(29)
	f23  = toyfield.New(23)

	sw = &swParams{
		base: f101, scalar: f83,
		a: 6, b: 9,
		cofactor: 1, cofactorInv: 1,
		genX: 0, genY: 3,
	}

	swSmall = &swParams{
		base: f97, scalar: f29,
		a: 2, b: 0,
		cofactor: 4, cofactorInv: 22, // 4·22 = 88 ≡ 1 mod 29
		genX: 1, genY: 10,
	}

	te = &teParams{
		base: f101, scalar: f23,
		a: 4, d: 7,
		cofactor: 4, cofactorInv: 6, // 4·6 = 24 ≡ 1 mod 23
		genX: 14, genY: 93,
	}

	mont = &montParams{
		base: f101, scalar: f23,
		a: 60, b: 66,
	}
)

func init() {
	te.mont = mont
	mont.te = te
}

// compile-time checks that the toy types satisfy the framework contracts
var (
	_ ecc.Element[*toyfield.Element]                                    = (*toyfield.Element)(nil)
	_ ecc.ScalarElement[*toyfield.Element]                              = (*toyfield.Element)(nil)
	_ ecc.SWCurveParams[*toyfield.Element, *toyfield.Element]           = (*swParams)(nil)
	_ ecc.TECurveParams[*toyfield.Element, *toyfield.Element]           = (*teParams)(nil)
	_ ecc.MontgomeryCurveParams[*toyfield.Element, *toyfield.Element]   = (*montParams)(nil)
)

// SW returns a prime-order (cofactor 1) short Weierstrass toy curve.
func SW() ecc.SWCurveParams[*toyfield.Element, *toyfield.Element] { return sw }

// SWSmallSubgroup returns a short Weierstrass toy curve with b = 0 and
// cofactor 4.
func SWSmallSubgroup() ecc.SWCurveParams[*toyfield.Element, *toyfield.Element] { return swSmall }

// TE returns the twisted Edwards toy curve, linked to Montgomery.
func TE() ecc.TECurveParams[*toyfield.Element, *toyfield.Element] { return te }

// Montgomery returns the Montgomery toy curve, linked to TE.
func Montgomery() ecc.MontgomeryCurveParams[*toyfield.Element, *toyfield.Element] { return mont }

// TwoTorsion returns the coordinates of the order-2 point on SWSmallSubgroup.
func TwoTorsion() (x, y uint64) { return 0, 0 }

// OutOfSubgroup returns the coordinates of an order-58 point on
// SWSmallSubgroup; it lies on the curve but outside the order-29 subgroup.
func OutOfSubgroup() (x, y uint64) { return 2, 20 }
