// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package sw implements the group law for curves in short Weierstrass form,
// generically over any ecc.SWCurveParams.
//
// Affine points satisfy the ecc.AffinePoint contract consumed by the subgroup
// verifier. Internally the arithmetic runs in Jacobian coordinates; formulas
// are the 2007 Bernstein-Lange ones:
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html
//
// Nothing here is constant time.
package sw

import (
	"fmt"
	"math/big"

	"github.com/consensys/multicurve/ecc"
)

// Affine is a point on a short Weierstrass curve in affine coordinates, plus
// the point at infinity. The zero value is unusable; use NewAffine,
// NewInfinity or Generator.
type Affine[B ecc.Element[B], S ecc.ScalarElement[S]] struct {
	curve ecc.SWCurveParams[B, S]
	x, y  B
	inf   bool
}

// NewAffine returns the point (x, y) on c. Coordinates are copied, not
// checked: use IsOnCurve to validate untrusted input.
func NewAffine[B ecc.Element[B], S ecc.ScalarElement[S]](c ecc.SWCurveParams[B, S], x, y B) *Affine[B, S] {
	return &Affine[B, S]{
		curve: c,
		x:     c.BaseField().Set(x),
		y:     c.BaseField().Set(y),
	}
}

// NewInfinity returns the identity of the group of c.
func NewInfinity[B ecc.Element[B], S ecc.ScalarElement[S]](c ecc.SWCurveParams[B, S]) *Affine[B, S] {
	return &Affine[B, S]{
		curve: c,
		x:     c.BaseField(),
		y:     c.BaseField(),
		inf:   true,
	}
}

// Generator returns c's fixed subgroup generator as a point.
func Generator[B ecc.Element[B], S ecc.ScalarElement[S]](c ecc.SWCurveParams[B, S]) *Affine[B, S] {
	x, y := c.Generator()
	return &Affine[B, S]{curve: c, x: x, y: y}
}

// Coordinates returns copies of the affine coordinates. Both are zero for the
// point at infinity.
func (p *Affine[B, S]) Coordinates() (x, y B) {
	return p.curve.BaseField().Set(p.x), p.curve.BaseField().Set(p.y)
}

// IsZero reports whether p is the point at infinity.
func (p *Affine[B, S]) IsZero() bool {
	return p.inf
}

func (p *Affine[B, S]) Equal(o *Affine[B, S]) bool {
	if p.inf || o.inf {
		return p.inf == o.inf
	}
	return p.x.Equal(o.x) && p.y.Equal(o.y)
}

// Neg returns -p as a new point.
func (p *Affine[B, S]) Neg() *Affine[B, S] {
	if p.inf {
		return NewInfinity(p.curve)
	}
	return &Affine[B, S]{
		curve: p.curve,
		x:     p.curve.BaseField().Set(p.x),
		y:     p.curve.BaseField().Neg(p.y),
	}
}

// IsOnCurve reports whether p satisfies y² = x³ + a·x + b.
func (p *Affine[B, S]) IsOnCurve() bool {
	if p.inf {
		return true
	}
	f := p.curve.BaseField
	lhs := f().Square(p.y)
	rhs := f().Square(p.x)
	rhs.Mul(rhs, p.x)
	rhs.Add(rhs, ecc.MulByA(p.curve, f(), p.x))
	rhs = ecc.AddB(p.curve, f(), rhs)
	return lhs.Equal(rhs)
}

// MulBits returns the scalar multiple of p for the given MSB-first bit
// sequence (double-and-add). See ecc.BigEndianBits for the bit-order
// contract.
func (p *Affine[B, S]) MulBits(bits []bool) *Affine[B, S] {
	acc := NewJacobian(p.curve)
	for _, bit := range bits {
		acc.Double()
		if bit {
			acc.AddMixed(p)
		}
	}
	return acc.ToAffine()
}

// ScalarMul returns scalar·p, processing the scalar in non-adjacent form.
// scalar must not be negative.
func (p *Affine[B, S]) ScalarMul(scalar *big.Int) *Affine[B, S] {
	naf := make([]int8, scalar.BitLen()+2)
	l := ecc.NafDecomposition(scalar, naf)
	neg := p.Neg()
	acc := NewJacobian(p.curve)
	for i := l - 1; i >= 0; i-- {
		acc.Double()
		switch naf[i] {
		case 1:
			acc.AddMixed(p)
		case -1:
			acc.AddMixed(neg)
		}
	}
	return acc.ToAffine()
}

func (p *Affine[B, S]) String() string {
	if p.inf {
		return "O"
	}
	return fmt.Sprintf("(%s, %s)", p.x.String(), p.y.String())
}

// Jacobian is a point in Jacobian coordinates (X:Y:Z), the affine point being
// (X/Z², Y/Z³); Z = 0 is the point at infinity. The zero value is unusable;
// use NewJacobian.
type Jacobian[B ecc.Element[B], S ecc.ScalarElement[S]] struct {
	curve   ecc.SWCurveParams[B, S]
	X, Y, Z B
}

// NewJacobian returns the identity of the group of c.
func NewJacobian[B ecc.Element[B], S ecc.ScalarElement[S]](c ecc.SWCurveParams[B, S]) *Jacobian[B, S] {
	p := &Jacobian[B, S]{
		curve: c,
		X:     c.BaseField(),
		Y:     c.BaseField(),
		Z:     c.BaseField(),
	}
	p.X.SetOne()
	p.Y.SetOne()
	return p
}

func (p *Jacobian[B, S]) Set(a *Jacobian[B, S]) *Jacobian[B, S] {
	p.X.Set(a.X)
	p.Y.Set(a.Y)
	p.Z.Set(a.Z)
	return p
}

// SetInfinity resets p to the identity.
func (p *Jacobian[B, S]) SetInfinity() *Jacobian[B, S] {
	p.X.SetOne()
	p.Y.SetOne()
	p.Z.SetZero()
	return p
}

// IsZero reports whether p is the point at infinity.
func (p *Jacobian[B, S]) IsZero() bool {
	return p.Z.IsZero()
}

// FromAffine sets p to a and returns p.
func (p *Jacobian[B, S]) FromAffine(a *Affine[B, S]) *Jacobian[B, S] {
	if a.inf {
		return p.SetInfinity()
	}
	p.X.Set(a.x)
	p.Y.Set(a.y)
	p.Z.SetOne()
	return p
}

// ToAffine returns p in affine coordinates as a new point.
func (p *Jacobian[B, S]) ToAffine() *Affine[B, S] {
	if p.Z.IsZero() {
		return NewInfinity(p.curve)
	}
	f := p.curve.BaseField
	zinv := f().Inverse(p.Z)
	zinv2 := f().Square(zinv)
	x := f().Mul(p.X, zinv2)
	y := f().Mul(p.Y, zinv2)
	y.Mul(y, zinv)
	return &Affine[B, S]{curve: p.curve, x: x, y: y}
}

// Neg negates p in place.
func (p *Jacobian[B, S]) Neg() *Jacobian[B, S] {
	p.Y.Neg(p.Y)
	return p
}

// Double doubles p in place.
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#doubling-dbl-2007-bl
func (p *Jacobian[B, S]) Double() *Jacobian[B, S] {
	if p.Z.IsZero() {
		return p
	}
	f := p.curve.BaseField

	XX := f().Square(p.X)
	YY := f().Square(p.Y)
	YYYY := f().Square(YY)
	ZZ := f().Square(p.Z)

	// S = 2·((X+YY)² − XX − YYYY)
	s := f().Add(p.X, YY)
	s.Square(s)
	s.Sub(s, XX)
	s.Sub(s, YYYY)
	s.Double(s)

	// M = 3·XX + a·ZZ²
	m := f().Double(XX)
	m.Add(m, XX)
	m.Add(m, ecc.MulByA(p.curve, f(), f().Square(ZZ)))

	// Z3 = (Y+Z)² − YY − ZZ
	z3 := f().Add(p.Y, p.Z)
	z3.Square(z3)
	z3.Sub(z3, YY)
	z3.Sub(z3, ZZ)

	// X3 = M² − 2·S
	x3 := f().Square(m)
	x3.Sub(x3, s)
	x3.Sub(x3, s)

	// Y3 = M·(S − X3) − 8·YYYY
	y3 := f().Sub(s, x3)
	y3.Mul(y3, m)
	t := f().Double(YYYY)
	t.Double(t)
	t.Double(t)
	y3.Sub(y3, t)

	p.X.Set(x3)
	p.Y.Set(y3)
	p.Z.Set(z3)
	return p
}

// Add sets p to p + a and returns p. Falls back to Double when p == a.
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#addition-add-2007-bl
func (p *Jacobian[B, S]) Add(a *Jacobian[B, S]) *Jacobian[B, S] {
	// p is infinity, return a
	if p.Z.IsZero() {
		return p.Set(a)
	}
	// a is infinity, return p
	if a.Z.IsZero() {
		return p
	}
	f := p.curve.BaseField

	Z1Z1 := f().Square(a.Z)
	Z2Z2 := f().Square(p.Z)
	U1 := f().Mul(a.X, Z2Z2)
	U2 := f().Mul(p.X, Z1Z1)
	S1 := f().Mul(a.Y, p.Z)
	S1.Mul(S1, Z2Z2)
	S2 := f().Mul(p.Y, a.Z)
	S2.Mul(S2, Z1Z1)

	// if p == a, we double instead
	if U1.Equal(U2) && S1.Equal(S2) {
		return p.Double()
	}

	H := f().Sub(U2, U1)
	I := f().Double(H)
	I.Square(I)
	J := f().Mul(H, I)
	r := f().Sub(S2, S1)
	r.Double(r)
	V := f().Mul(U1, I)

	// X3 = r² − J − 2·V
	p.X.Square(r)
	p.X.Sub(p.X, J)
	p.X.Sub(p.X, V)
	p.X.Sub(p.X, V)

	// Y3 = r·(V − X3) − 2·S1·J
	p.Y.Sub(V, p.X)
	p.Y.Mul(p.Y, r)
	S1.Mul(S1, J)
	S1.Double(S1)
	p.Y.Sub(p.Y, S1)

	// Z3 = ((Z1+Z2)² − Z1Z1 − Z2Z2)·H
	p.Z.Add(p.Z, a.Z)
	p.Z.Square(p.Z)
	p.Z.Sub(p.Z, Z1Z1)
	p.Z.Sub(p.Z, Z2Z2)
	p.Z.Mul(p.Z, H)

	return p
}

// AddMixed sets p to p + a for an affine a and returns p.
// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#addition-madd-2007-bl
func (p *Jacobian[B, S]) AddMixed(a *Affine[B, S]) *Jacobian[B, S] {
	if a.inf {
		return p
	}
	if p.Z.IsZero() {
		p.X.Set(a.x)
		p.Y.Set(a.y)
		p.Z.SetOne()
		return p
	}
	f := p.curve.BaseField

	Z1Z1 := f().Square(p.Z)
	U2 := f().Mul(a.x, Z1Z1)
	S2 := f().Mul(a.y, p.Z)
	S2.Mul(S2, Z1Z1)

	// if p == a, we double instead
	if U2.Equal(p.X) && S2.Equal(p.Y) {
		return p.Double()
	}

	H := f().Sub(U2, p.X)
	HH := f().Square(H)
	I := f().Double(HH)
	I.Double(I)
	J := f().Mul(H, I)
	r := f().Sub(S2, p.Y)
	r.Double(r)
	V := f().Mul(p.X, I)

	// X3 = r² − J − 2·V
	x3 := f().Square(r)
	x3.Sub(x3, J)
	x3.Sub(x3, V)
	x3.Sub(x3, V)

	// Y3 = r·(V − X3) − 2·Y1·J
	y3 := f().Sub(V, x3)
	y3.Mul(y3, r)
	t := f().Mul(p.Y, J)
	t.Double(t)
	y3.Sub(y3, t)

	// Z3 = (Z1+H)² − Z1Z1 − HH
	z3 := f().Add(p.Z, H)
	z3.Square(z3)
	z3.Sub(z3, Z1Z1)
	z3.Sub(z3, HH)

	p.X.Set(x3)
	p.Y.Set(y3)
	p.Z.Set(z3)
	return p
}
