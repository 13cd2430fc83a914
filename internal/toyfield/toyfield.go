// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package toyfield implements a naive prime field over small moduli.
//
// It exists to exercise the generic curve model framework in tests with
// hand-checkable numbers; nothing here is constant time and Sqrt is a linear
// scan. The modulus must be an odd prime below 2³². Elements must be obtained
// from a Field (or copied from one of its elements) so they carry the modulus.
package toyfield

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/consensys/multicurve/debug"
)

// Field is a prime field F_q.
type Field struct {
	q uint64
}

// New returns the field of order q. q must be an odd prime below 2³²; this is
// trusted, not checked.
func New(q uint64) *Field {
	if q < 3 || q >= 1<<32 {
		panic("toyfield: modulus out of range")
	}
	return &Field{q: q}
}

// Modulus returns q as a big integer.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).SetUint64(f.q)
}

// Zero returns a new zero element of the field.
func (f *Field) Zero() *Element {
	return &Element{q: f.q}
}

// FromUint64 returns a new element set to v mod q.
func (f *Field) FromUint64(v uint64) *Element {
	return &Element{v: v % f.q, q: f.q}
}

// Element is an element of a Field. The zero value is unusable; use
// Field.Zero or Field.FromUint64.
type Element struct {
	v uint64
	q uint64
}

// Uint64 returns the canonical representative of z in [0, q).
func (z *Element) Uint64() uint64 { return z.v }

func (z *Element) Set(x *Element) *Element {
	z.v, z.q = x.v, x.q
	return z
}

func (z *Element) SetZero() *Element {
	z.v = 0
	return z
}

func (z *Element) SetOne() *Element {
	z.v = 1 % z.q
	return z
}

func (z *Element) SetRandom() (*Element, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, err
	}
	z.v = binary.BigEndian.Uint64(buf[:]) % z.q
	return z, nil
}

func (z *Element) Add(x, y *Element) *Element {
	debug.Assert(x.q == y.q, "toyfield: mixed fields")
	z.q = x.q
	z.v = (x.v + y.v) % z.q
	return z
}

func (z *Element) Sub(x, y *Element) *Element {
	debug.Assert(x.q == y.q, "toyfield: mixed fields")
	z.q = x.q
	z.v = (x.v + z.q - y.v) % z.q
	return z
}

func (z *Element) Neg(x *Element) *Element {
	z.q = x.q
	z.v = (z.q - x.v) % z.q
	return z
}

func (z *Element) Double(x *Element) *Element {
	z.q = x.q
	z.v = (x.v + x.v) % z.q
	return z
}

func (z *Element) Mul(x, y *Element) *Element {
	debug.Assert(x.q == y.q, "toyfield: mixed fields")
	z.q = x.q
	z.v = x.v * y.v % z.q
	return z
}

func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Inverse sets z to 1/x (0 maps to 0), by Fermat's little theorem.
func (z *Element) Inverse(x *Element) *Element {
	z.q = x.q
	z.v = expMod(x.v, x.q-2, x.q)
	return z
}

// Sqrt sets z to a square root of x when one exists and returns z, nil
// otherwise. Linear scan; fine for toy moduli.
func (z *Element) Sqrt(x *Element) *Element {
	for r := uint64(0); r <= x.q/2; r++ {
		if r*r%x.q == x.v {
			z.q = x.q
			z.v = r
			return z
		}
	}
	return nil
}

func (z *Element) IsZero() bool { return z.v == 0 }
func (z *Element) IsOne() bool  { return z.v == 1 }

func (z *Element) Equal(x *Element) bool {
	debug.Assert(x.q == z.q, "toyfield: mixed fields")
	return z.v == x.v
}

func (z *Element) String() string {
	return fmt.Sprintf("%d", z.v)
}

func (z *Element) SetBigInt(v *big.Int) *Element {
	var r big.Int
	r.Mod(v, new(big.Int).SetUint64(z.q))
	z.v = r.Uint64()
	return z
}

func (z *Element) BigInt(res *big.Int) *big.Int {
	return res.SetUint64(z.v)
}

func expMod(base, exp, mod uint64) uint64 {
	res := uint64(1)
	base %= mod
	for exp > 0 {
		if exp&1 == 1 {
			res = res * base % mod
		}
		base = base * base % mod
		exp >>= 1
	}
	return res
}
