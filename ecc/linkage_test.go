// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ecc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/multicurve/ecc"
	"github.com/consensys/multicurve/internal/toycurve"
)

func TestLinkageRoundTrip(t *testing.T) {
	te := toycurve.TE()
	mont := te.Montgomery()

	require.True(t, mont.TwistedEdwards() == te, "montgomery side must link back to the twisted edwards set")
	require.True(t, toycurve.Montgomery().TwistedEdwards().Montgomery() == mont)
}

func TestLinkageSharesBaseField(t *testing.T) {
	te := toycurve.TE()
	mont := te.Montgomery()

	// same base field: elements from either side interoperate
	e := te.BaseField().SetOne()
	require.True(t, mont.BaseField().SetOne().Equal(e))
	require.Equal(t, te.ScalarFieldModulus(), mont.ScalarFieldModulus())
}

func TestMontgomeryCoefficientsDerivedFromTE(t *testing.T) {
	te := toycurve.TE()
	mont := te.Montgomery()

	// A = 2(a+d)/(a−d), B = 4/(a−d); for a=4, d=7 over F₁₀₁: A=60, B=66
	a, d := te.CoeffA(), te.CoeffD()
	den := te.BaseField().Sub(a, d)
	den.Inverse(den)

	wantA := te.BaseField().Add(a, d)
	wantA.Mul(wantA, den).Double(wantA)
	wantB := te.BaseField().SetOne()
	wantB.Double(wantB).Double(wantB).Mul(wantB, den)

	require.True(t, mont.CoeffA().Equal(wantA))
	require.True(t, mont.CoeffB().Equal(wantB))
	require.Equal(t, "60", mont.CoeffA().String())
	require.Equal(t, "66", mont.CoeffB().String())
}

func TestAssertLinkageConsistentIsNopInReleaseBuilds(t *testing.T) {
	// without the debug build tag this must never panic, whatever the input
	require.NotPanics(t, func() {
		ecc.AssertLinkageConsistent(toycurve.TE())
	})
}
