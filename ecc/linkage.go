// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ecc

import (
	"github.com/consensys/multicurve/debug"
	"github.com/consensys/multicurve/logger"
)

// AssertLinkageConsistent checks that the twisted Edwards / Montgomery pair
// declared by te is mutually consistent: the Montgomery set links back to te,
// and its coefficients match the ones derived from the twisted Edwards
// equation by the standard birational map
//
//	A = 2·(a+d)/(a−d)   B = 4/(a−d)
//
// The framework never runs this on its own; it is an opt-in sanity check for
// curve authors, typically called from the curve package init. It is a no-op
// unless the debug build tag is set, and panics (via debug.Assert) on a
// mismatch after logging the offending coefficients.
func AssertLinkageConsistent[B Element[B], S ScalarElement[S]](te TECurveParams[B, S]) {
	if !debug.Debug {
		return
	}
	log := logger.Logger().With().Str("curve", te.ID().String()).Logger()

	mont := te.Montgomery()
	if back := mont.TwistedEdwards(); back != te {
		log.Error().Msg("montgomery parameters do not link back to the twisted edwards set")
		debug.Assert(false, "twisted edwards / montgomery linkage does not round-trip")
	}

	a, d := te.CoeffA(), te.CoeffD()
	den := te.BaseField().Sub(a, d)
	den.Inverse(den)

	wantA := te.BaseField().Add(a, d)
	wantA.Mul(wantA, den).Double(wantA)

	wantB := te.BaseField().SetOne()
	wantB.Double(wantB).Double(wantB)
	wantB.Mul(wantB, den)

	if gotA := mont.CoeffA(); !gotA.Equal(wantA) {
		log.Error().Str("got", gotA.String()).Str("want", wantA.String()).Msg("montgomery coefficient A does not match derived value")
		debug.Assert(false, "montgomery coefficient A inconsistent with twisted edwards parameters")
	}
	if gotB := mont.CoeffB(); !gotB.Equal(wantB) {
		log.Error().Str("got", gotB.String()).Str("want", wantB.String()).Msg("montgomery coefficient B does not match derived value")
		debug.Assert(false, "montgomery coefficient B inconsistent with twisted edwards parameters")
	}
}
