// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package bandersnatch

import (
	"crypto/rand"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"

	"github.com/consensys/multicurve/ecc"
)

// rModulus is the order of the prime subgroup, taken from gnark-crypto.
var rModulus = func() *big.Int {
	ed := curve.GetEdwardsCurve()
	return new(big.Int).Set(&ed.Order)
}()

// Scalar is an element of the scalar field of Bandersnatch, the prime field
// of order rModulus. gnark-crypto exposes the subgroup order only as a big
// integer, with no dedicated field-element package, so the representation is
// big.Int backed; nothing here is constant time. The zero value is a valid
// zero element.
type Scalar struct {
	v big.Int
}

func (z *Scalar) Set(x *Scalar) *Scalar {
	z.v.Set(&x.v)
	return z
}

func (z *Scalar) SetZero() *Scalar {
	z.v.SetUint64(0)
	return z
}

func (z *Scalar) SetOne() *Scalar {
	z.v.SetUint64(1)
	return z
}

func (z *Scalar) SetRandom() (*Scalar, error) {
	r, err := rand.Int(rand.Reader, rModulus)
	if err != nil {
		return nil, err
	}
	z.v.Set(r)
	return z, nil
}

func (z *Scalar) Add(x, y *Scalar) *Scalar {
	z.v.Add(&x.v, &y.v)
	z.v.Mod(&z.v, rModulus)
	return z
}

func (z *Scalar) Sub(x, y *Scalar) *Scalar {
	z.v.Sub(&x.v, &y.v)
	z.v.Mod(&z.v, rModulus)
	return z
}

func (z *Scalar) Neg(x *Scalar) *Scalar {
	z.v.Neg(&x.v)
	z.v.Mod(&z.v, rModulus)
	return z
}

func (z *Scalar) Double(x *Scalar) *Scalar {
	z.v.Lsh(&x.v, 1)
	z.v.Mod(&z.v, rModulus)
	return z
}

func (z *Scalar) Mul(x, y *Scalar) *Scalar {
	z.v.Mul(&x.v, &y.v)
	z.v.Mod(&z.v, rModulus)
	return z
}

func (z *Scalar) Square(x *Scalar) *Scalar {
	return z.Mul(x, x)
}

// Inverse sets z to 1/x (0 maps to 0).
func (z *Scalar) Inverse(x *Scalar) *Scalar {
	if x.v.Sign() == 0 {
		return z.SetZero()
	}
	z.v.ModInverse(&x.v, rModulus)
	return z
}

// Sqrt sets z to a square root of x when one exists and returns z, nil
// otherwise.
func (z *Scalar) Sqrt(x *Scalar) *Scalar {
	if z.v.ModSqrt(&x.v, rModulus) == nil {
		return nil
	}
	return z
}

func (z *Scalar) IsZero() bool {
	return z.v.Sign() == 0
}

func (z *Scalar) IsOne() bool {
	return z.v.IsUint64() && z.v.Uint64() == 1
}

func (z *Scalar) Equal(x *Scalar) bool {
	return z.v.Cmp(&x.v) == 0
}

func (z *Scalar) String() string {
	return z.v.String()
}

func (z *Scalar) SetBigInt(v *big.Int) *Scalar {
	z.v.Mod(v, rModulus)
	return z
}

func (z *Scalar) BigInt(res *big.Int) *big.Int {
	return res.Set(&z.v)
}

var _ ecc.ScalarElement[*Scalar] = (*Scalar)(nil)
