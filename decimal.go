package decimal

import (
	"fmt"
	"math/big"
)

const debugDecimal = false

// A nonzero finite Decimal represents a multi-precision decimal floating point
// number
//
//	sign × 0.mantissa × 10**exponent
//
// with 0.1 <= mantissa < 1.0, and MinExp <= exponent <= MaxExp. A Decimal may
// also be zero (+0, -0) or infinite (+Inf, -Inf). All Decimals are ordered,
// and the ordering of two Decimals x and y is defined by x.Cmp(y).
//
// Each Decimal value also has a precision, rounding mode, and accuracy. The
// precision is the maximum number of decimal digits available to represent
// the value. The rounding mode specifies how a result should be rounded to fit
// into the mantissa digits, and accuracy describes the rounding error with
// respect to the exact result.
type Decimal struct {
	mant big.Int
	exp  int32
	prec uint32
	dig  uint32
	mode RoundingMode
	acc  Accuracy
	form form
	neg  bool
}

// NewDecimal allocates and returns a new Decimal set to mant × 10**exp, with
// precision 20 and rounding mode ToNearestEven.
func NewDecimal(mant int64, exp int) *Decimal {
	z := new(Decimal).SetInt64(mant)
	return z.SetMantExp(z, exp)
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (z *Decimal) Abs(x *Decimal) *Decimal {
	return z.setSigned(x, false)
}

// Acc returns the accuracy of x produced by the most recent operation.
func (x *Decimal) Acc() Accuracy {
	return x.acc
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
func (x *Decimal) Cmp(y *Decimal) int {
	if debugDecimal {
		x.validate()
		y.validate()
	}

	mx := x.ord()
	my := y.ord()
	switch {
	case mx < my:
		return -1
	case mx > my:
		return +1
	}
	// mx == my

	// only if |mx| == 1 we have to compare the mantissae
	switch mx {
	case -1:
		return y.ucmp(x)
	case +1:
		return x.ucmp(y)
	}

	return 0
}

// ord classifies x and returns:
//
//	-2 if -Inf == x
//	-1 if -Inf < x < 0
//	 0 if x == 0 (signed or unsigned)
//	+1 if 0 < x < +Inf
//	+2 if x == +Inf
//
func (x *Decimal) ord() int {
	var m int
	switch x.form {
	case finite:
		m = 1
	case zero:
		return 0
	case inf:
		m = 2
	}
	if x.neg {
		m = -m
	}
	return m
}

// ucmp returns -1, 0, or +1, depending on whether
// |x| < |y|, |x| == |y|, or |x| > |y|.
// x and y must have a non-empty mantissa and valid exponent.
func (x *Decimal) ucmp(y *Decimal) int {
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return +1
	}
	// x.exp == y.exp

	// align mantissae on their most significant digit
	var a, b big.Int
	switch {
	case x.dig < y.dig:
		a.Mul(&x.mant, intPow10(nil, uint64(y.dig-x.dig)))
		b.Set(&y.mant)
	case x.dig > y.dig:
		a.Set(&x.mant)
		b.Mul(&y.mant, intPow10(nil, uint64(x.dig-y.dig)))
	default:
		return x.mant.Cmp(&y.mant)
	}
	return a.Cmp(&b)
}

// Copy sets z to x, with the same precision, rounding mode, and
// accuracy as x, and returns z. x is not changed even if z and
// x are the same.
func (z *Decimal) Copy(x *Decimal) *Decimal {
	if debugDecimal {
		x.validate()
	}
	if z != x {
		z.prec = x.prec
		z.mode = x.mode
		z.acc = x.acc
		z.form = x.form
		z.neg = x.neg
		if z.form == finite {
			z.mant.Set(&x.mant)
			z.exp = x.exp
			z.dig = x.dig
		}
	}
	return z
}

// IsInf reports whether x is +Inf or -Inf.
func (x *Decimal) IsInf() bool {
	return x.form == inf
}

// IsInt reports whether x is an integer.
// ±Inf values are not integers.
func (x *Decimal) IsInt() bool {
	if debugDecimal {
		x.validate()
	}
	// special cases
	if x.form != finite {
		return x.form == zero
	}
	// x.form == finite
	return x.exp >= int32(x.dig)
}

// MantExp breaks x into its mantissa and exponent components
// and returns the exponent. If a non-nil mant argument is
// provided its value is set to the mantissa of x, with the
// same precision and rounding mode as x. The components
// satisfy x == mant × 10**exp, with 0.1 <= |mant| < 1.0.
// Calling MantExp with a nil argument is an efficient way to
// get the exponent of the receiver.
//
// Special cases are:
//
//	(  ±0).MantExp(mant) = 0, with mant set to   ±0
//	(±Inf).MantExp(mant) = 0, with mant set to ±Inf
//
// x and mant may be the same in which case x is set to its
// mantissa value.
func (x *Decimal) MantExp(mant *Decimal) (exp int) {
	if debugDecimal {
		x.validate()
	}
	if x.form == finite {
		exp = int(x.exp)
	}
	if mant != nil {
		mant.Set(x)
		if mant.form == finite {
			mant.exp = 0
		}
	}
	return
}

// MinPrec returns the minimum precision required to represent x exactly
// (i.e., the smallest prec before x.SetPrec(prec) would start rounding x).
// The result is 0 for |x| == 0 and |x| == Inf.
func (x *Decimal) MinPrec() uint {
	if x.form != finite {
		return 0
	}
	return uint(x.dig)
}

// Mode returns the rounding mode of x.
func (x *Decimal) Mode() RoundingMode {
	return x.mode
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (z *Decimal) Neg(x *Decimal) *Decimal {
	return z.setSigned(x, !x.neg)
}

// setSigned is like Set but sets z's sign to neg before rounding.
func (z *Decimal) setSigned(x *Decimal, neg bool) *Decimal {
	if z.prec == 0 {
		z.prec = x.prec
	}
	z.setExact(x)
	z.neg = neg
	z.round()
	return z
}

// Prec returns the mantissa precision of x in decimal digits.
// The result may be 0 for |x| == 0 and |x| == Inf.
func (x *Decimal) Prec() uint {
	return uint(x.prec)
}

// Set sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the precision of x
// before setting z (and rounding will have no effect).
// Rounding is performed according to z's precision and rounding
// mode; and z's accuracy reports the result error relative to the
// exact (not rounded) result.
func (z *Decimal) Set(x *Decimal) *Decimal {
	if debugDecimal {
		x.validate()
	}
	z.acc = Exact
	if z != x {
		z.form = x.form
		z.neg = x.neg
		if x.form == finite {
			z.exp = x.exp
			z.dig = x.dig
			z.mant.Set(&x.mant)
		}
		if z.prec == 0 {
			z.prec = x.prec
		} else if z.prec < x.prec {
			z.round()
		}
	}
	return z
}

// SetInf sets z to the infinite Decimal -Inf if signbit is
// set, or +Inf if signbit is not set, and returns z. The
// precision of z is unchanged and the result is always
// Exact.
func (z *Decimal) SetInf(signbit bool) *Decimal {
	z.acc = Exact
	z.form = inf
	z.neg = signbit
	return z
}

// SetInt sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to the larger of the number of
// decimal digits of x or 20 (and rounding will have no effect).
func (z *Decimal) SetInt(x *big.Int) *Decimal {
	digits := uint32(decDigits(x))
	if z.prec == 0 {
		z.prec = umax32(digits, intPrec)
	}
	z.acc = Exact
	z.neg = x.Sign() < 0
	if digits == 0 {
		z.form = zero
		return z
	}
	// x != 0
	z.mant.Abs(x)
	z.form = finite
	z.norm(0)
	return z
}

// SetInt64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 20 (and rounding will have
// no effect).
func (z *Decimal) SetInt64(x int64) *Decimal {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	// We cannot simply call z.SetUint64(u) and change
	// the sign afterwards because the sign affects rounding.
	return z.setUint64(x < 0, u)
}

// SetUint64 sets z to the (possibly rounded) value of x and returns z.
// If z's precision is 0, it is changed to 20 (and rounding will have
// no effect).
func (z *Decimal) SetUint64(x uint64) *Decimal {
	return z.setUint64(false, x)
}

func (z *Decimal) setUint64(neg bool, x uint64) *Decimal {
	if z.prec == 0 {
		z.prec = intPrec
	}
	z.acc = Exact
	z.neg = neg
	if x == 0 {
		z.form = zero
		return z
	}
	// x != 0
	z.form = finite
	z.mant.SetUint64(x)
	z.norm(0)
	return z
}

// SetMantExp sets z to mant × 10**exp and returns z.
// The components are interpreted as in MantExp, i.e.
// z == mant × 10**exp with 0.1 <= |mant| < 1.0 for a
// normalized mant. The result z has the same precision
// and rounding mode as mant.
//
// Special cases are:
//
//	z.SetMantExp(  ±0, exp) =   ±0
//	z.SetMantExp(±Inf, exp) = ±Inf
//
// z and mant may be the same in which case z's exponent
// is set to exp.
func (z *Decimal) SetMantExp(mant *Decimal, exp int) *Decimal {
	if debugDecimal {
		z.validate()
		mant.validate()
	}
	z.Set(mant)
	if z.form != finite {
		return z
	}
	z.setExpAndRound(int64(z.exp) + int64(exp))
	return z
}

// SetMode sets z's rounding mode to mode and returns an exact z.
// z remains unchanged otherwise.
// z.SetMode(z.Mode()) is a cheap way to set z's accuracy to Exact.
func (z *Decimal) SetMode(mode RoundingMode) *Decimal {
	z.mode = mode
	z.acc = Exact
	return z
}

// SetPrec sets z's precision to prec and returns the (possibly) rounded
// value of z. Rounding occurs according to z's rounding mode if the mantissa
// cannot be represented in prec digits without loss of precision.
// SetPrec(0) maps all finite values to ±0; infinite values remain unchanged.
// If prec > MaxPrec, it is set to MaxPrec.
func (z *Decimal) SetPrec(prec uint) *Decimal {
	z.acc = Exact // optimistically assume no rounding is needed

	// special case
	if prec == 0 {
		z.prec = 0
		if z.form == finite {
			// truncate z to 0
			z.acc = makeAcc(z.neg)
			z.form = zero
		}
		return z
	}

	// general case
	if prec > MaxPrec {
		prec = MaxPrec
	}
	old := z.prec
	z.prec = uint32(prec)
	if z.prec < old {
		z.round()
	}
	return z
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0
//	+1 if x >   0
//
func (x *Decimal) Sign() int {
	if debugDecimal {
		x.validate()
	}
	if x.form == zero {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative or negative zero.
func (x *Decimal) Signbit() bool {
	return x.neg
}

// iexp returns the exponent e of x such that |x| = mant × 10**e.
func (x *Decimal) iexp() int64 {
	return int64(x.exp) - int64(x.dig)
}

// norm normalizes z's mantissa, which represents |z| = mant × 10**e, and
// rounds it to z's precision. z.form must be finite. norm handles a zero
// mantissa.
func (z *Decimal) norm(e int64) {
	if z.mant.Sign() == 0 {
		z.acc = Exact
		z.form = zero
		return
	}
	e += int64(trimZeros(&z.mant))
	z.dig = uint32(decDigits(&z.mant))
	z.setExpAndRound(e + int64(z.dig))
}

func (z *Decimal) setExpAndRound(exp int64) {
	if exp < MinExp {
		// underflow
		z.acc = makeAcc(z.neg)
		z.form = zero
		return
	}

	if exp > MaxExp {
		// overflow
		z.acc = makeAcc(!z.neg)
		z.form = inf
		return
	}

	z.form = finite
	z.exp = int32(exp)
	z.round()
}

// fit is like norm but increases z's precision instead of rounding z. The
// accuracy of z is not changed unless z overflows or underflows.
func (z *Decimal) fit(e int64) {
	if z.mant.Sign() == 0 {
		z.form = zero
		return
	}
	e += int64(trimZeros(&z.mant))
	z.dig = uint32(decDigits(&z.mant))
	if z.prec < z.dig {
		z.prec = z.dig
	}
	exp := e + int64(z.dig)
	switch {
	case exp < MinExp:
		z.acc = makeAcc(z.neg)
		z.form = zero
	case exp > MaxExp:
		z.acc = makeAcc(!z.neg)
		z.form = inf
	default:
		z.form = finite
		z.exp = int32(exp)
	}
}

// setExact sets z to the exact value of x, leaving z's precision and rounding
// mode unchanged. z's mantissa may not fit z's precision after setExact.
func (z *Decimal) setExact(x *Decimal) {
	z.acc = Exact
	if z != x {
		z.form = x.form
		z.neg = x.neg
		if x.form == finite {
			z.exp = x.exp
			z.dig = x.dig
			z.mant.Set(&x.mant)
		}
	}
}

func (x *Decimal) validate() {
	if !debugDecimal {
		// avoid performance bugs
		panic("validate called but debugDecimal is not set")
	}
	if x.form != finite {
		return
	}
	if x.mant.Sign() <= 0 {
		panic("nonzero finite number with empty or negative mantissa")
	}
	var r big.Int
	if r.Rem(&x.mant, iTen).Sign() == 0 {
		panic(fmt.Sprintf("mantissa of %s is divisible by 10", x.Text('e', 0)))
	}
	if d := uint32(decDigits(&x.mant)); x.dig != d {
		panic(fmt.Sprintf("digit count %d != real digit count %d for %s", x.dig, d, x.Text('e', 0)))
	}
	if x.prec == 0 {
		panic("zero precision finite number")
	}
}

// round rounds z according to z.mode to z.prec digits and sets z.acc accordingly.
// z's mantissa must be normalized.
//
// CAUTION: The rounding modes ToNegativeInf, ToPositiveInf are affected by the
// sign of z. For correct rounding, the sign of z must be set correctly before
// calling round.
func (z *Decimal) round() {
	z.acc = Exact
	if z.form != finite {
		// ±0 or ±Inf => nothing left to do
		return
	}
	if z.prec == 0 {
		z.acc = makeAcc(z.neg)
		z.form = zero
		return
	}
	if z.dig <= z.prec {
		// mantissa fits => nothing to do
		return
	}

	// digits > z.prec
	drop := z.dig - z.prec
	e := z.iexp() + int64(drop)
	r, sticky := shr10(&z.mant, &z.mant, uint(drop))

	// the mantissa has no trailing zeros, so the dropped digits are never all 0.
	inc := z.mode.inc(z.neg, z.mant.Bit(0) != 0, half(r, sticky))
	z.acc = makeAcc(inc != z.neg)
	if inc {
		// add 1 to mantissa
		z.mant.Add(&z.mant, iOne)
	}
	e += int64(trimZeros(&z.mant))
	z.dig = uint32(decDigits(&z.mant))
	if exp := e + int64(z.dig); exp > MaxExp {
		// carry overflow
		z.form = inf
	} else {
		z.exp = int32(exp)
	}
	if debugDecimal {
		z.validate()
	}
}

// Quantize sets z to the value of x rounded to n digits after the decimal
// point according to z's rounding mode, and returns z. A negative n rounds to
// a multiple of 10**-n. If z's precision is lower than the number of digits
// of the result, it is raised to fit the result exactly. z's accuracy reports
// the rounding error relative to x.
//
// A non-zero x that rounds to zero yields a zero with the sign of x.
func (z *Decimal) Quantize(x *Decimal, n int) *Decimal {
	if debugDecimal {
		x.validate()
	}
	z.setExact(x)
	if z.form != finite {
		return z
	}
	e := z.iexp()
	want := -int64(n)
	if e >= want {
		// no digits to drop
		if z.prec < z.dig {
			z.prec = z.dig
		}
		return z
	}

	drop := uint64(want - e)
	var r uint
	var sticky bool
	if drop > uint64(z.dig) {
		// all digits are below the rounding digit
		z.mant.SetUint64(0)
		sticky = true
	} else {
		r, sticky = shr10(&z.mant, &z.mant, uint(drop))
	}
	inc := z.mode.inc(z.neg, z.mant.Bit(0) != 0, half(r, sticky))
	z.acc = makeAcc(inc != z.neg)
	if inc {
		z.mant.Add(&z.mant, iOne)
	}
	z.fit(want)
	return z
}

// RoundToMultiple sets z to the value of x rounded to an integral multiple of
// |m| according to z's rounding mode, and returns z. If z's precision is lower
// than the number of digits of the result, it is raised to fit the result
// exactly.
//
// RoundToMultiple panics with ErrNaN if m is zero or infinite and x is finite.
func (z *Decimal) RoundToMultiple(x, m *Decimal) *Decimal {
	if debugDecimal {
		x.validate()
		m.validate()
	}
	if x.form == finite && m.form != finite {
		panic(ErrNaN{"rounding to a multiple of zero or infinity"})
	}
	// m may be aliased to z
	var b big.Int
	b.Set(&m.mant)
	eb := m.iexp()

	z.setExact(x)
	if z.form != finite {
		return z
	}
	ea := z.iexp()

	// align x and m on the smallest exponent
	var a, q, r big.Int
	a.Set(&z.mant)
	e := ea
	if ea > eb {
		a.Mul(&a, intPow10(nil, uint64(ea-eb)))
		e = eb
	}
	d := new(big.Int).Set(&b)
	if eb > e {
		d.Mul(d, intPow10(nil, uint64(eb-e)))
	}
	q.QuoRem(&a, d, &r)
	if r.Sign() != 0 {
		r.Lsh(&r, 1)
		inc := z.mode.inc(z.neg, q.Bit(0) != 0, r.Cmp(d))
		z.acc = makeAcc(inc != z.neg)
		if inc {
			q.Add(&q, iOne)
		}
	}
	z.mant.Mul(&q, &b)
	z.fit(eb)
	return z
}
