// This file implements conversions between Decimals and other numeric types.

package decimal

import (
	"math"
	"math/big"
	"strconv"
)

var big5 = big.NewInt(5)

// SetFloat64 sets z to the exact value of x and returns z. If z's precision is
// 0, it is changed to the larger of 17 or the number of digits needed to
// represent x exactly (and rounding will have no effect). Note that most
// binary fractions need many decimal digits: 0.1 is
// 0.1000000000000000055511151231257827021181583404541015625.
// If x is ±Inf, z is set to ±Inf.
// SetFloat64 panics with ErrNaN if x is a NaN.
func (z *Decimal) SetFloat64(x float64) *Decimal {
	if math.IsNaN(x) {
		panic(ErrNaN{"Decimal.SetFloat64(NaN)"})
	}
	z.acc = Exact
	z.neg = math.Signbit(x) // handle -0, -Inf correctly
	if x == 0 {
		z.form = zero
		if z.prec == 0 {
			z.prec = float64Prec
		}
		return z
	}
	if math.IsInf(x, 0) {
		z.form = inf
		if z.prec == 0 {
			z.prec = float64Prec
		}
		return z
	}
	// normalized x != 0
	fmant, exp := math.Frexp(math.Abs(x)) // |x| = fmant × 2**exp, 0.5 <= fmant < 1
	z.mant.SetUint64(uint64(fmant * (1 << 53)))
	exp -= 53
	var e int64
	if exp >= 0 {
		z.mant.Lsh(&z.mant, uint(exp))
	} else {
		// m × 2**exp == m × 5**-exp × 10**exp
		var p, n big.Int
		p.Exp(big5, n.SetInt64(int64(-exp)), nil)
		z.mant.Mul(&z.mant, &p)
		e = int64(exp)
	}
	e += int64(trimZeros(&z.mant))
	if z.prec == 0 {
		z.prec = umax32(uint32(decDigits(&z.mant)), float64Prec)
	}
	z.form = finite
	z.norm(e)
	return z
}

// SetFloat64Shortest sets z to the shortest decimal value that converts back
// to x, as produced by strconv.FormatFloat(x, 'e', -1, 64), and returns z.
// If z's precision is 0, it is changed to 17 (and rounding will have no
// effect). If x is ±Inf, z is set to ±Inf.
// SetFloat64Shortest panics with ErrNaN if x is a NaN.
func (z *Decimal) SetFloat64Shortest(x float64) *Decimal {
	if math.IsNaN(x) {
		panic(ErrNaN{"Decimal.SetFloat64Shortest(NaN)"})
	}
	if z.prec == 0 {
		z.prec = float64Prec
	}
	if math.IsInf(x, 0) {
		return z.SetInf(x < 0)
	}
	var buf [32]byte
	s := strconv.AppendFloat(buf[:0], x, 'e', -1, 64)
	if _, _, err := z.Parse(string(s), 10); err != nil {
		panic("strconv produced an invalid number: " + err.Error())
	}
	return z
}

// SetRat sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the largest of the number of
// digits of the numerator and denominator of x, or 20.
func (z *Decimal) SetRat(x *big.Rat) *Decimal {
	if x.IsInt() {
		return z.SetInt(x.Num())
	}
	var a, b Decimal
	a.SetInt(x.Num())
	b.SetInt(x.Denom())
	return z.Quo(&a, &b)
}

// Float64 returns the float64 value nearest to x (ties to even). If x is too
// small to be represented by a float64 (|x| < math.SmallestNonzeroFloat64),
// the result is (0, Below) or (-0, Above), respectively, depending on the
// sign of x. If x is too large to be represented by a float64
// (|x| > math.MaxFloat64), the result is (+Inf, Above) or (-Inf, Below),
// depending on the sign of x.
func (x *Decimal) Float64() (float64, Accuracy) {
	if debugDecimal {
		x.validate()
	}

	switch x.form {
	case finite:
		// strconv.ParseFloat is correctly rounded
		f, _ := strconv.ParseFloat(x.Text('e', -1), 64)
		var y Decimal
		return f, Accuracy(y.SetFloat64(f).Cmp(x))

	case zero:
		if x.neg {
			return math.Copysign(0, -1), Exact
		}
		return 0.0, Exact

	case inf:
		if x.neg {
			return math.Inf(-1), Exact
		}
		return math.Inf(+1), Exact
	}

	panic("unreachable")
}

// Int returns the result of truncating x towards zero;
// or nil if x is an infinity.
// The result is Exact if x.IsInt(); otherwise it is Below
// for x > 0, and Above for x < 0.
// If a non-nil *big.Int argument z is provided, Int stores
// the result in z instead of allocating a new Int.
func (x *Decimal) Int(z *big.Int) (*big.Int, Accuracy) {
	if debugDecimal {
		x.validate()
	}

	if z == nil && x.form <= finite {
		z = new(big.Int)
	}

	switch x.form {
	case finite:
		// 0 < |x| < +Inf
		acc := makeAcc(x.neg)
		e := x.iexp()
		switch {
		case e >= 0:
			z.Mul(&x.mant, intPow10(nil, uint64(e)))
			acc = Exact
		case -e >= int64(x.dig):
			// |x| < 1
			z.SetUint64(0)
		default:
			z.Quo(&x.mant, intPow10(nil, uint64(-e)))
		}
		if x.neg {
			z.Neg(z)
		}
		return z, acc

	case zero:
		return z.SetInt64(0), Exact

	case inf:
		return nil, makeAcc(x.neg)
	}

	panic("unreachable")
}

// Int64 returns the integer resulting from truncating x towards zero.
// If math.MinInt64 <= x <= math.MaxInt64, the result is Exact if x is
// an integer, and Above (x < 0) or Below (x > 0) otherwise.
// The result is (math.MinInt64, Above) for x < math.MinInt64,
// and (math.MaxInt64, Below) for x > math.MaxInt64.
func (x *Decimal) Int64() (int64, Accuracy) {
	switch x.form {
	case finite:
		i, acc := x.Int(nil)
		if i.IsInt64() {
			return i.Int64(), acc
		}
		if x.neg {
			return math.MinInt64, Above
		}
		return math.MaxInt64, Below

	case zero:
		return 0, Exact

	case inf:
		if x.neg {
			return math.MinInt64, Above
		}
		return math.MaxInt64, Below
	}

	panic("unreachable")
}

// Uint64 returns the unsigned integer resulting from truncating x
// towards zero. If 0 <= x <= math.MaxUint64, the result is Exact
// if x is an integer and Below otherwise.
// The result is (0, Above) for x < 0, and (math.MaxUint64, Below)
// for x > math.MaxUint64.
func (x *Decimal) Uint64() (uint64, Accuracy) {
	switch x.form {
	case finite:
		if x.neg {
			return 0, Above
		}
		i, acc := x.Int(nil)
		if i.IsUint64() {
			return i.Uint64(), acc
		}
		return math.MaxUint64, Below

	case zero:
		return 0, Exact

	case inf:
		if x.neg {
			return 0, Above
		}
		return math.MaxUint64, Below
	}

	panic("unreachable")
}

// Rat returns the rational number corresponding to x;
// or nil if x is an infinity.
// The result is Exact if x is not an Inf.
// If a non-nil *big.Rat argument z is provided, Rat stores
// the result in z instead of allocating a new Rat.
func (x *Decimal) Rat(z *big.Rat) (*big.Rat, Accuracy) {
	if debugDecimal {
		x.validate()
	}

	if z == nil && x.form <= finite {
		z = new(big.Rat)
	}

	switch x.form {
	case finite:
		// 0 < |x| < +Inf
		var n big.Int
		n.Set(&x.mant)
		if x.neg {
			n.Neg(&n)
		}
		e := x.iexp()
		if e >= 0 {
			n.Mul(&n, intPow10(nil, uint64(e)))
			return z.SetInt(&n), Exact
		}
		return z.SetFrac(&n, intPow10(nil, uint64(-e))), Exact

	case zero:
		return z.SetInt64(0), Exact

	case inf:
		return nil, makeAcc(x.neg)
	}

	panic("unreachable")
}
