// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package multicurve provides the generic algebraic core shared by the curves
// of a multi-curve elliptic-curve library: the model parameter contracts for
// the short Weierstrass, twisted Edwards and Montgomery equation forms, the
// default coefficient operators, and the cofactor-based subgroup membership
// test.
//
// The framework lives in the ecc package; ecc/sw implements the short
// Weierstrass group law generically; ecc/bls12381 and ecc/bandersnatch
// instantiate the contracts for two production curves on top of gnark-crypto.
package multicurve
