// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package sw_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/multicurve/ecc"
	"github.com/consensys/multicurve/ecc/sw"
	"github.com/consensys/multicurve/internal/toycurve"
	"github.com/consensys/multicurve/internal/toyfield"
)

type element = *toyfield.Element
type point = *sw.Affine[element, element]

var _ ecc.AffinePoint[point] = point(nil)

func newPoint(c ecc.SWCurveParams[element, element], x, y uint64) point {
	return sw.NewAffine(c,
		c.BaseField().SetBigInt(new(big.Int).SetUint64(x)),
		c.BaseField().SetBigInt(new(big.Int).SetUint64(y)))
}

func mul(p point, k uint64) point {
	return p.MulBits(ecc.BigEndianBits(new(big.Int).SetUint64(k)))
}

// known multiples of the generator (0, 3) of y² = x³ + 6x + 9 over F₁₀₁,
// group order 83
func TestKnownMultiples(t *testing.T) {
	c := toycurve.SW()
	g := sw.Generator(c)
	require.True(t, g.IsOnCurve())

	require.True(t, mul(g, 1).Equal(g))
	require.True(t, mul(g, 2).Equal(newPoint(c, 1, 97)))
	require.True(t, mul(g, 3).Equal(newPoint(c, 48, 30)))
	require.True(t, mul(g, 5).Equal(newPoint(c, 33, 84)))
	require.True(t, mul(g, 83).IsZero())
	require.True(t, mul(g, 0).IsZero())
}

func TestGroupLaw(t *testing.T) {
	c := toycurve.SW()
	g := sw.Generator(c)

	twoG := sw.NewJacobian(c).FromAffine(g).Double()
	threeG := sw.NewJacobian(c).FromAffine(g).Double().AddMixed(g)

	require.True(t, twoG.ToAffine().Equal(mul(g, 2)))
	require.True(t, threeG.ToAffine().Equal(mul(g, 3)))

	// 2G + 3G == 5G, via full Jacobian addition
	fiveG := sw.NewJacobian(c).Set(twoG).Add(threeG)
	require.True(t, fiveG.ToAffine().Equal(mul(g, 5)))

	// adding the same point routes through doubling
	fourG := sw.NewJacobian(c).Set(twoG).Add(twoG)
	require.True(t, fourG.ToAffine().Equal(mul(g, 4)))

	// G + (-G) == O
	acc := sw.NewJacobian(c).FromAffine(g).AddMixed(g.Neg())
	require.True(t, acc.IsZero())

	// identity cases
	require.True(t, sw.NewJacobian(c).Add(sw.NewJacobian(c)).IsZero())
	require.True(t, sw.NewJacobian(c).AddMixed(sw.NewInfinity(c)).IsZero())
}

func TestMulBitsAndNafAgree(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	for _, c := range []ecc.SWCurveParams[element, element]{
		toycurve.SW(),
		toycurve.SWSmallSubgroup(),
	} {
		g := sw.Generator(c)
		properties.Property("MulBits and ScalarMul agree on "+c.CoeffB().String(), prop.ForAll(
			func(k uint64) bool {
				scalar := new(big.Int).SetUint64(k)
				byBits := g.MulBits(ecc.BigEndianBits(scalar))
				byNaf := g.ScalarMul(scalar)
				return byBits.Equal(byNaf) && byBits.IsOnCurve()
			},
			gen.UInt64Range(0, 500),
		))
	}

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMultiplesStayOnCurve(t *testing.T) {
	c := toycurve.SWSmallSubgroup()
	g := sw.Generator(c)
	for k := uint64(0); k < 60; k++ {
		p := mul(g, k)
		require.True(t, p.IsOnCurve(), "k=%d", k)
	}
}

func TestInfinityMulBits(t *testing.T) {
	c := toycurve.SW()
	o := sw.NewInfinity(c)
	require.True(t, o.IsZero())
	require.True(t, o.IsOnCurve())
	require.True(t, mul(o, 42).IsZero())
}

func TestCoordinatesAreCopies(t *testing.T) {
	c := toycurve.SW()
	g := sw.Generator(c)
	x, _ := g.Coordinates()
	x.SetOne()
	x2, _ := g.Coordinates()
	require.False(t, x2.IsOne(), "mutating a returned coordinate must not touch the point")
}

var benchRes point

func BenchmarkScalarMul(b *testing.B) {
	c := toycurve.SW()
	g := sw.Generator(c)
	scalar := big.NewInt(77)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchRes = g.ScalarMul(scalar)
	}
}
