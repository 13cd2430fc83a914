// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package bls12381 instantiates the short Weierstrass model contract for the
// G1 group of BLS12-381, on top of the gnark-crypto field arithmetic.
//
// E: y² = x³ + 4 over Fp, prime subgroup of order r = fr.Modulus(),
// cofactor 0x396c8c005555e1568c00aaab0000aaab.
package bls12381

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/consensys/multicurve/ecc"
)

type g1Params struct {
	b           fp.Element
	cofactor    big.Int
	cofactorInv fr.Element
	genX, genY  fp.Element
}

var (
	g1       g1Params
	initOnce sync.Once
)

// G1 returns the curve parameters of the BLS12-381 G1 group.
func G1() ecc.SWCurveParams[*fp.Element, *fr.Element] {
	initOnce.Do(initG1)
	return &g1
}

func initG1() {
	g1.b.SetUint64(4)

	g1.cofactor.SetString("396c8c005555e1568c00aaab0000aaab", 16)
	var inv big.Int
	inv.ModInverse(&g1.cofactor, fr.Modulus())
	g1.cofactorInv.SetBigInt(&inv)

	if _, err := g1.genX.SetString("3685416753713387016781088315183077757961620795782546409894578378688607592378376318836054947676345821548104185464507"); err != nil {
		panic(err)
	}
	if _, err := g1.genY.SetString("1339506544944476473020471379941921221584933875938349620426543736416511423956333506472724655353366534992391756441569"); err != nil {
		panic(err)
	}
}

func (c *g1Params) ID() ecc.ID                 { return ecc.BLS12_381 }
func (c *g1Params) BaseField() *fp.Element     { return new(fp.Element) }
func (c *g1Params) ScalarField() *fr.Element   { return new(fr.Element) }
func (c *g1Params) ScalarFieldModulus() *big.Int { return fr.Modulus() }

// CoeffA returns 0; BLS12-381 is an a = 0 curve.
func (c *g1Params) CoeffA() *fp.Element { return new(fp.Element) }

func (c *g1Params) CoeffB() *fp.Element { return new(fp.Element).Set(&c.b) }

func (c *g1Params) Cofactor() *big.Int { return new(big.Int).Set(&c.cofactor) }

func (c *g1Params) CofactorInv() *fr.Element { return new(fr.Element).Set(&c.cofactorInv) }

func (c *g1Params) Generator() (x, y *fp.Element) {
	return new(fp.Element).Set(&c.genX), new(fp.Element).Set(&c.genY)
}

// MulByA shortcuts the coefficient product: a is zero, so is the result.
func (c *g1Params) MulByA(z, e *fp.Element) *fp.Element {
	return z.SetZero()
}

var _ ecc.SWCurveParams[*fp.Element, *fr.Element] = (*g1Params)(nil)
var _ ecc.AMultiplier[*fp.Element] = (*g1Params)(nil)
