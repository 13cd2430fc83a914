// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package bandersnatch instantiates the linked twisted Edwards / Montgomery
// model contracts for the Bandersnatch curve, defined over the scalar field
// of BLS12-381.
//
// Twisted Edwards form: -5x² + y² = 1 + dx²y², cofactor 4. The equation
// coefficients, generator and subgroup order come from gnark-crypto's
// bandersnatch package; the Montgomery coefficients are derived at init time
// from the twisted Edwards ones by the birational map A = 2(a+d)/(a−d),
// B = 4/(a−d), which keeps the two parameter sets consistent by construction.
// Scalars live in the Scalar type of this package.
package bandersnatch

import (
	"math/big"
	"sync"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/multicurve/ecc"
)

type teParams struct {
	a, d        fr.Element
	cofactor    big.Int
	cofactorInv Scalar
	genX, genY  fr.Element
}

type montParams struct {
	a, b fr.Element
}

var (
	te       teParams
	mont     montParams
	initOnce sync.Once
)

// TE returns the twisted Edwards parameters of Bandersnatch.
func TE() ecc.TECurveParams[*fr.Element, *Scalar] {
	initOnce.Do(initCurve)
	return &te
}

// Montgomery returns the Montgomery parameters of Bandersnatch.
func Montgomery() ecc.MontgomeryCurveParams[*fr.Element, *Scalar] {
	initOnce.Do(initCurve)
	return &mont
}

func initCurve() {
	ed := curve.GetEdwardsCurve()
	te.a.Set(&ed.A)
	te.d.Set(&ed.D)
	te.genX.Set(&ed.Base.X)
	te.genY.Set(&ed.Base.Y)

	te.cofactor.SetInt64(4)
	var inv big.Int
	inv.ModInverse(&te.cofactor, rModulus)
	te.cofactorInv.SetBigInt(&inv)

	// A = 2(a+d)/(a−d), B = 4/(a−d)
	var den, four fr.Element
	den.Sub(&te.a, &te.d)
	den.Inverse(&den)
	mont.a.Add(&te.a, &te.d)
	mont.a.Mul(&mont.a, &den)
	mont.a.Double(&mont.a)
	four.SetUint64(4)
	mont.b.Mul(&four, &den)

	ecc.AssertLinkageConsistent[*fr.Element, *Scalar](&te)
}

func (c *teParams) ID() ecc.ID                   { return ecc.BANDERSNATCH }
func (c *teParams) BaseField() *fr.Element       { return new(fr.Element) }
func (c *teParams) ScalarField() *Scalar         { return new(Scalar) }
func (c *teParams) ScalarFieldModulus() *big.Int { return new(big.Int).Set(rModulus) }
func (c *teParams) CoeffA() *fr.Element          { return new(fr.Element).Set(&c.a) }
func (c *teParams) CoeffD() *fr.Element          { return new(fr.Element).Set(&c.d) }
func (c *teParams) Cofactor() *big.Int           { return new(big.Int).Set(&c.cofactor) }
func (c *teParams) CofactorInv() *Scalar         { return new(Scalar).Set(&c.cofactorInv) }
func (c *teParams) Generator() (x, y *fr.Element) {
	return new(fr.Element).Set(&c.genX), new(fr.Element).Set(&c.genY)
}
func (c *teParams) Montgomery() ecc.MontgomeryCurveParams[*fr.Element, *Scalar] {
	return &mont
}

// MulByA shortcuts the coefficient product for a = -5: z = -(4e + e).
func (c *teParams) MulByA(z, e *fr.Element) *fr.Element {
	z.Double(e)
	z.Double(z)
	z.Add(z, e)
	return z.Neg(z)
}

func (c *montParams) ID() ecc.ID                   { return ecc.BANDERSNATCH }
func (c *montParams) BaseField() *fr.Element       { return new(fr.Element) }
func (c *montParams) ScalarField() *Scalar         { return new(Scalar) }
func (c *montParams) ScalarFieldModulus() *big.Int { return new(big.Int).Set(rModulus) }
func (c *montParams) CoeffA() *fr.Element          { return new(fr.Element).Set(&c.a) }
func (c *montParams) CoeffB() *fr.Element          { return new(fr.Element).Set(&c.b) }
func (c *montParams) TwistedEdwards() ecc.TECurveParams[*fr.Element, *Scalar] {
	return &te
}

var (
	_ ecc.TECurveParams[*fr.Element, *Scalar]         = (*teParams)(nil)
	_ ecc.MontgomeryCurveParams[*fr.Element, *Scalar] = (*montParams)(nil)
	_ ecc.AMultiplier[*fr.Element]                    = (*teParams)(nil)
)
