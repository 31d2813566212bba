// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the arithmetic operations of Decimals.

package decimal

import "math/big"

// align returns the mantissae of x and y scaled to their smallest exponent,
// and that exponent.
func align(x, y *Decimal) (a, b *big.Int, e int64) {
	ex, ey := x.iexp(), y.iexp()
	a = new(big.Int).Set(&x.mant)
	b = new(big.Int).Set(&y.mant)
	switch {
	case ex > ey:
		a.Mul(a, intPow10(nil, uint64(ex-ey)))
		e = ey
	case ex < ey:
		b.Mul(b, intPow10(nil, uint64(ey-ex)))
		e = ex
	default:
		e = ex
	}
	return a, b, e
}

// z = |x| + |y|
func (z *Decimal) uadd(x, y *Decimal) {
	a, b, e := align(x, y)
	z.mant.Add(a, b)
	z.form = finite
	z.norm(e)
}

// z = |x| - |y| for |x| > |y|
func (z *Decimal) usub(x, y *Decimal) {
	a, b, e := align(x, y)
	z.mant.Sub(a, b)
	z.form = finite
	z.norm(e)
}

// Add sets z to the rounded sum x+y and returns z. If z's precision is 0,
// it is changed to the larger of x's or y's precision before the operation.
// Rounding is performed according to z's precision and rounding mode; and
// z's accuracy reports the result error relative to the exact (not rounded)
// result. Add panics with ErrNaN if x and y are infinities with opposite
// signs. The value of z is undefined in that case.
func (z *Decimal) Add(x, y *Decimal) *Decimal {
	return z.add(x, y, y.neg)
}

// Sub sets z to the rounded difference x-y and returns z.
// Precision, rounding, and accuracy reporting are as for Add.
// Sub panics with ErrNaN if x and y are infinities with equal
// signs. The value of z is undefined in that case.
func (z *Decimal) Sub(x, y *Decimal) *Decimal {
	return z.add(x, y, !y.neg)
}

// add sets z to x + y where the sign of y is taken to be yneg.
func (z *Decimal) add(x, y *Decimal, yneg bool) *Decimal {
	if debugDecimal {
		x.validate()
		y.validate()
	}

	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	if x.form == finite && y.form == finite {
		// x + y (common case)

		// Below we set z.neg = x.neg, and when z aliases y this will
		// change the sign of y. Any other aliasing is handled by align.
		xneg := x.neg
		z.neg = xneg
		if xneg == yneg {
			// x + y == x + y
			// (-x) + (-y) == -(x + y)
			z.uadd(x, y)
		} else {
			// x + (-y) == x - y == -(y - x)
			// (-x) + y == y - x == -(x - y)
			if x.ucmp(y) > 0 {
				z.usub(x, y)
			} else {
				z.neg = !z.neg
				z.usub(y, x)
			}
		}
		if z.form == zero {
			// exact cancellation: +0 unless rounding toward -Inf
			z.neg = z.mode == ToNegativeInf
			z.acc = Exact
		}
		return z
	}

	if x.form == inf && y.form == inf && x.neg != yneg {
		// +Inf + -Inf
		// -Inf + +Inf
		// value of z is undefined but make sure it's valid
		z.acc = Exact
		z.form = zero
		z.neg = false
		panic(ErrNaN{"addition of infinities with opposite signs"})
	}

	if x.form == zero && y.form == zero {
		// ±0 + ±0
		z.acc = Exact
		z.form = zero
		z.neg = x.neg && yneg // -0 + -0 == -0
		return z
	}

	if x.form == inf || y.form == zero {
		// ±Inf + y
		// x + ±0
		return z.Set(x)
	}

	// ±0 + y
	// x + ±Inf
	// the sign of y must be set before rounding
	z.setExact(y)
	z.neg = yneg
	z.round()
	return z
}

// Mul sets z to the rounded product x*y and returns z.
// Precision, rounding, and accuracy reporting are as for Add.
// Mul panics with ErrNaN if one operand is zero and the other
// operand an infinity. The value of z is undefined in that case.
func (z *Decimal) Mul(x, y *Decimal) *Decimal {
	if debugDecimal {
		x.validate()
		y.validate()
	}

	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	neg := x.neg != y.neg

	if x.form == finite && y.form == finite {
		// x * y (common case)
		e := x.iexp() + y.iexp()
		z.neg = neg
		z.mant.Mul(&x.mant, &y.mant)
		z.form = finite
		z.norm(e)
		return z
	}

	z.acc = Exact
	if x.form == zero && y.form == inf || x.form == inf && y.form == zero {
		// ±0 * ±Inf
		// ±Inf * ±0
		// value of z is undefined but make sure it's valid
		z.form = zero
		z.neg = false
		panic(ErrNaN{"multiplication of zero with infinity"})
	}

	z.neg = neg
	if x.form == inf || y.form == inf {
		// ±Inf * y
		// x * ±Inf
		z.form = inf
		return z
	}

	// ±0 * y
	// x * ±0
	z.form = zero
	return z
}

// Quo sets z to the rounded quotient x/y and returns z.
// Precision, rounding, and accuracy reporting are as for Add.
// Quo panics with ErrNaN if both operands are zero or infinities.
// The value of z is undefined in that case.
func (z *Decimal) Quo(x, y *Decimal) *Decimal {
	if debugDecimal {
		x.validate()
		y.validate()
	}

	if z.prec == 0 {
		z.prec = umax32(x.prec, y.prec)
	}

	neg := x.neg != y.neg

	if x.form == finite && y.form == finite {
		// x / y (common case)
		e := x.iexp() - y.iexp()

		// scale x so that the quotient has at least z.prec+1 digits
		shift := int64(z.prec) + int64(y.dig) - int64(x.dig) + 1
		if shift < 0 {
			shift = 0
		}
		var n, q, r big.Int
		n.Mul(&x.mant, intPow10(nil, uint64(shift)))
		q.QuoRem(&n, &y.mant, &r)
		e -= shift
		if r.Sign() != 0 {
			// append a sticky digit
			q.Mul(&q, iTen)
			q.Add(&q, iOne)
			e--
		}
		z.neg = neg
		z.mant.Set(&q)
		z.form = finite
		z.norm(e)
		return z
	}

	z.acc = Exact
	if x.form == zero && y.form == zero || x.form == inf && y.form == inf {
		// ±0 / ±0
		// ±Inf / ±Inf
		// value of z is undefined but make sure it's valid
		z.form = zero
		z.neg = false
		panic(ErrNaN{"division of zero by zero or infinity by infinity"})
	}

	z.neg = neg
	if x.form == zero || y.form == inf {
		// ±0 / y
		// x / ±Inf
		z.form = zero
		return z
	}

	// x / ±0
	// ±Inf / y
	z.form = inf
	return z
}
