// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ecc_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/consensys/multicurve/ecc"
)

func TestNafDecomposition(t *testing.T) {
	exp := big.NewInt(13)
	var result [400]int8
	lExp := ecc.NafDecomposition(exp, result[:])
	dec := result[:lExp]

	res := [5]int8{1, 0, -1, 0, 1}
	for i, v := range dec {
		if v != res[i] {
			t.Error("Error in NafDecomposition")
		}
	}
}

func TestBigEndianBits(t *testing.T) {
	// 13 = 0b1101
	got := ecc.BigEndianBits(big.NewInt(13))
	want := []bool{true, true, false, true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BigEndianBits(13) mismatch (-want +got):\n%s", diff)
	}

	if len(ecc.BigEndianBits(big.NewInt(0))) != 0 {
		t.Error("BigEndianBits(0) must be empty")
	}
}

func TestBigEndianBitsRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)
	properties.Property("folding BigEndianBits(n) back yields n", prop.ForAll(
		func(a uint64) bool {
			n := new(big.Int).SetUint64(a)
			var acc uint64
			for _, bit := range ecc.BigEndianBits(n) {
				acc <<= 1
				if bit {
					acc |= 1
				}
			}
			return acc == a
		},
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
