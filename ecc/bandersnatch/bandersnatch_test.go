// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bandersnatch_test

import (
	"math/big"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/consensys/multicurve/ecc"
	"github.com/consensys/multicurve/ecc/bandersnatch"
)

func TestGeneratorOnCurve(t *testing.T) {
	te := bandersnatch.TE()

	// a·x² + y² == 1 + d·x²·y²
	x, y := te.Generator()
	xx := new(fr.Element).Square(x)
	yy := new(fr.Element).Square(y)

	lhs := ecc.MulByA(te, new(fr.Element), xx)
	lhs.Add(lhs, yy)

	rhs := new(fr.Element).Mul(xx, yy)
	rhs.Mul(rhs, te.CoeffD())
	one := new(fr.Element).SetOne()
	rhs.Add(rhs, one)

	require.True(t, lhs.Equal(rhs), "generator must satisfy the twisted Edwards equation")
}

// The parameter set must agree with gnark-crypto's own bandersnatch data: the
// scalar field modulus is the subgroup order and the generator is the base
// point.
func TestParametersMatchGnarkCrypto(t *testing.T) {
	te := bandersnatch.TE()
	ed := curve.GetEdwardsCurve()

	require.Equal(t, 0, te.ScalarFieldModulus().Cmp(&ed.Order))
	require.True(t, te.CoeffA().Equal(&ed.A))
	require.True(t, te.CoeffD().Equal(&ed.D))

	x, y := te.Generator()
	require.True(t, x.Equal(&ed.Base.X))
	require.True(t, y.Equal(&ed.Base.Y))
}

func TestLinkageRoundTrip(t *testing.T) {
	te := bandersnatch.TE()
	mont := bandersnatch.Montgomery()

	require.True(t, te.Montgomery() == mont)
	require.True(t, mont.TwistedEdwards() == te)
	require.Equal(t, te.ID(), mont.ID())
}

func TestMontgomeryCoefficientsDerivedFromTE(t *testing.T) {
	te := bandersnatch.TE()
	mont := te.Montgomery()

	a, d := te.CoeffA(), te.CoeffD()
	den := new(fr.Element).Sub(a, d)
	den.Inverse(den)

	wantA := new(fr.Element).Add(a, d)
	wantA.Mul(wantA, den).Double(wantA)
	four := new(fr.Element).SetUint64(4)
	wantB := new(fr.Element).Mul(four, den)

	if diff := cmp.Diff(wantA.String(), mont.CoeffA().String()); diff != "" {
		t.Errorf("coefficient A mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantB.String(), mont.CoeffB().String()); diff != "" {
		t.Errorf("coefficient B mismatch (-want +got):\n%s", diff)
	}
}

func TestMulByAShortcut(t *testing.T) {
	te := bandersnatch.TE()

	var e fr.Element
	_, err := e.SetRandom()
	require.NoError(t, err)

	got := ecc.MulByA(te, new(fr.Element), &e)
	want := new(fr.Element).Mul(&e, te.CoeffA())
	require.True(t, got.Equal(want), "a = -5 shortcut must match the generic product")
}

func TestCofactorInverse(t *testing.T) {
	te := bandersnatch.TE()

	var hInv big.Int
	te.CofactorInv().BigInt(&hInv)
	hInv.Mul(&hInv, te.Cofactor())
	hInv.Mod(&hInv, te.ScalarFieldModulus())
	require.Equal(t, int64(1), hInv.Int64())
}

func TestAccessorsReturnCopies(t *testing.T) {
	te := bandersnatch.TE()

	d := te.CoeffD()
	d.SetZero()
	require.False(t, te.CoeffD().IsZero(), "mutating a returned coefficient must not touch the parameter set")
}
