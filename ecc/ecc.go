// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package ecc is the algebraic core shared by every curve in the library.
//
// A concrete curve is described by a parameter set implementing one of three
// model contracts: short Weierstrass (SWCurveParams), twisted Edwards
// (TECurveParams) or Montgomery (MontgomeryCurveParams). The package supplies,
// once and generically, the operations every parameter set inherits: the
// coefficient operators (MulByA, AddB) and the cofactor-based subgroup
// membership test (IsInCorrectSubgroupAssumingOnCurve). Field and point
// arithmetic are consumed through capability contracts (Element, ScalarElement,
// AffinePoint) satisfied, among others, by the gnark-crypto field element types
// and by the generic point engine in ecc/sw.
package ecc

// ID identifies a curve instantiated through this library.
type ID uint16

const (
	UNKNOWN ID = iota
	BLS12_381
	BANDERSNATCH
)

func (id ID) String() string {
	switch id {
	case BLS12_381:
		return "bls12_381"
	case BANDERSNATCH:
		return "bandersnatch"
	default:
		return "unknown"
	}
}
