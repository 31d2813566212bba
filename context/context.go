// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for Decimals.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *decimal.Decimal
//
// create a new decimal.Decimal set to the value of x, and rounded using c's
// precision and rounding mode.
//
// Operators that set a receiver z to function of other decimal arguments like:
//
//	func (c *Context) UnaryOp(z, x *decimal.Decimal) *decimal.Decimal
//	func (c *Context) BinaryOp(z, x, y *decimal.Decimal) *decimal.Decimal
//
// set z to the result of z.Op(args), rounded using the c's precision and
// rounding mode and return z. z takes c's precision and rounding mode. The
// arguments may alias z.
//
// A Context catches NaN errors: if an operation generates a NaN, the operation
// will silently succeed with an undefined result. Further operations with the
// context will be no-ops (they simply return the receiver z) until
// (*Context).Err is called to check for errors.
//
// Although it does not exactly provide IEEE-754 NaNs, it provides a form of
// support for quiet NaNs.
package context

import (
	"errors"
	"math/big"

	decimal "github.com/db47h/decfmt"
)

// A Context is a wrapper around Decimals that facilitates management of
// rounding modes, precision and error handling.
type Context struct {
	prec uint32
	mode decimal.RoundingMode
	err  error
}

// New creates a new context with the given precision and rounding mode. If prec
// is 0, it will be set to decimal.DefaultDecimalPrec.
func New(prec uint, mode decimal.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() decimal.RoundingMode {
	return c.mode
}

// Prec returns the precision of c in decimal digits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode decimal.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec. If prec == 0, it is set to
// decimal.DefaultDecimalPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = decimal.DefaultDecimalPrec
	}
	// general case
	if prec > decimal.MaxPrec {
		prec = decimal.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// New returns a new decimal.Decimal with value 0, precision and rounding mode set
// to c's precision and rounding mode.
func (c *Context) New() *decimal.Decimal {
	return new(decimal.Decimal).SetMode(c.mode).SetPrec(uint(c.prec))
}

// NewInt returns a new *decimal.Decimal set to the (possibly rounded) value of
// x.
func (c *Context) NewInt(x *big.Int) *decimal.Decimal {
	return c.New().SetInt(x)
}

// NewInt64 returns a new *decimal.Decimal set to the (possibly rounded) value
// of x.
func (c *Context) NewInt64(x int64) *decimal.Decimal {
	return c.New().SetInt64(x)
}

// NewUint64 returns a new *decimal.Decimal set to the (possibly rounded) value
// of x.
func (c *Context) NewUint64(x uint64) *decimal.Decimal {
	return c.New().SetUint64(x)
}

// NewFloat64 returns a new *decimal.Decimal set to the (possibly rounded)
// shortest decimal value that converts back to x.
func (c *Context) NewFloat64(x float64) *decimal.Decimal {
	return c.New().SetFloat64Shortest(x)
}

// NewRat returns a new *decimal.Decimal set to the (possibly rounded) value of
// x.
func (c *Context) NewRat(x *big.Rat) *decimal.Decimal {
	return c.New().SetRat(x)
}

// NewString returns a new Decimal with the value of s and a boolean
// indicating success. s must be a floating-point number of the same format as
// accepted by (*decimal.Decimal).Parse, with base argument 0. The entire string
// (not just a prefix) must be valid for success. If the operation failed, the
// value of d is undefined but the returned value is nil. d's precision and
// rounding mode are set to c's precision and rounding mode.
func (c *Context) NewString(s string) (d *decimal.Decimal, success bool) {
	return c.New().SetString(s)
}

// ParseDecimal is like d.Parse(s, base) with d set to c's precision and rounding mode.
func (c *Context) ParseDecimal(s string, base int) (f *decimal.Decimal, b int, err error) {
	return decimal.ParseDecimal(s, base, uint(c.prec), c.mode)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// trap recovers from a decimal.ErrNaN panic and records it as c's error.
// Other panics are propagated.
func (c *Context) trap() {
	if r := recover(); r != nil {
		var nan decimal.ErrNaN
		if err, ok := r.(error); ok && errors.As(err, &nan) {
			c.err = nan
			return
		}
		panic(r)
	}
}

// run stores the result of op, computed with c's precision and rounding mode,
// into z. z is left unchanged if op panics with a NaN.
func (c *Context) run(z *decimal.Decimal, op func(t *decimal.Decimal)) *decimal.Decimal {
	if c.err != nil {
		return z
	}
	t := c.New()
	func() {
		defer c.trap()
		op(t)
	}()
	if c.err != nil {
		return z
	}
	return z.Copy(t)
}

// Round sets z's to the value of x and returns z rounded using c's precision
// and rounding mode.
func (c *Context) Round(z, x *decimal.Decimal) *decimal.Decimal {
	return c.run(z, func(t *decimal.Decimal) { t.Set(x) })
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *decimal.Decimal) *decimal.Decimal {
	return c.run(z, func(t *decimal.Decimal) { t.Add(x, y) })
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *decimal.Decimal) *decimal.Decimal {
	return c.run(z, func(t *decimal.Decimal) { t.Sub(x, y) })
}

// Mul sets z to the rounded product x×y and returns z.
func (c *Context) Mul(z, x, y *decimal.Decimal) *decimal.Decimal {
	return c.run(z, func(t *decimal.Decimal) { t.Mul(x, y) })
}

// Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Quo(z, x, y *decimal.Decimal) *decimal.Decimal {
	return c.run(z, func(t *decimal.Decimal) { t.Quo(x, y) })
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (c *Context) Neg(z, x *decimal.Decimal) *decimal.Decimal {
	return c.run(z, func(t *decimal.Decimal) { t.Neg(x) })
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (c *Context) Abs(z, x *decimal.Decimal) *decimal.Decimal {
	return c.run(z, func(t *decimal.Decimal) { t.Abs(x) })
}

// Quantize sets z to x rounded to n fraction digits using c's rounding mode
// and returns z. The precision of z is raised if needed to hold the result
// exactly.
func (c *Context) Quantize(z, x *decimal.Decimal, n int) *decimal.Decimal {
	return c.run(z, func(t *decimal.Decimal) { t.Quantize(x, n) })
}

// RoundToMultiple sets z to x rounded to a multiple of m using c's rounding
// mode and returns z. A zero or infinite m is a NaN error.
func (c *Context) RoundToMultiple(z, x, m *decimal.Decimal) *decimal.Decimal {
	return c.run(z, func(t *decimal.Decimal) { t.RoundToMultiple(x, m) })
}
