package decimal

import (
	"math/big"
)

var (
	iTen = big.NewInt(10)
	iOne = big.NewInt(1)
)

var pow10s = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

// log10(2)
const log10_2 = 0.30102999566398119521373889472449302676818988146210854131

// intPow10 sets z to 10**n and returns z. If z is nil, a new big.Int is
// allocated.
func intPow10(z *big.Int, n uint64) *big.Int {
	if z == nil {
		z = new(big.Int)
	}
	if n < uint64(len(pow10s)) {
		return z.SetUint64(pow10s[n])
	}
	z.SetUint64(n)
	return z.Exp(iTen, z, nil)
}

// decDigits64 returns the number of decimal digits of x. The result is 0 for
// x == 0.
func decDigits64(x uint64) (n uint) {
	for n < uint(len(pow10s)) && x >= pow10s[n] {
		n++
	}
	return n
}

// decDigits returns the number of decimal digits of |x|. The result is 0 for
// x == 0.
func decDigits(x *big.Int) uint {
	if x.Sign() == 0 {
		return 0
	}
	if x.IsUint64() {
		return decDigits64(x.Uint64())
	}
	// m <= digits <= m+1
	m := uint(float64(x.BitLen()) * log10_2)
	var a, p big.Int
	a.Abs(x)
	if a.Cmp(intPow10(&p, uint64(m))) >= 0 {
		return m + 1
	}
	return m
}

// trimZeros divides x by 10 until its last decimal digit is not 0. It returns
// the number of digits removed. trimZeros(0) == 0.
func trimZeros(x *big.Int) (n uint) {
	if x.Sign() == 0 {
		return 0
	}
	var q, r big.Int
	big19 := new(big.Int).SetUint64(pow10s[19])
	for {
		q.QuoRem(x, big19, &r)
		if r.Sign() != 0 {
			break
		}
		x.Set(&q)
		n += 19
	}
	for {
		q.QuoRem(x, iTen, &r)
		if r.Sign() != 0 {
			break
		}
		x.Set(&q)
		n++
	}
	return n
}

// shr10 sets z to x / 10**s, truncated, where x >= 0. It returns the most
// significant digit removed and a boolean indicating if any of the digits
// following it were non-zero.
func shr10(z, x *big.Int, s uint) (r uint, sticky bool) {
	if s == 0 {
		z.Set(x)
		return 0, false
	}
	var rem big.Int
	z.QuoRem(x, intPow10(nil, uint64(s-1)), &rem)
	sticky = rem.Sign() != 0
	z.QuoRem(z, iTen, &rem)
	return uint(rem.Uint64()), sticky
}

// half compares the digits discarded by a truncation to one half of the last
// kept digit. r is the most significant discarded digit and sticky reports
// whether any following digit is non-zero.
func half(r uint, sticky bool) int {
	switch {
	case r > 5 || r == 5 && sticky:
		return 1
	case r == 5:
		return 0
	}
	return -1
}

// inc reports whether a magnitude truncated toward zero must be incremented
// by one unit in the last place. cmp compares the discarded part to one half
// unit (-1, 0, +1) and odd reports whether the truncated magnitude is odd.
// The discarded part must be non-zero.
func (mode RoundingMode) inc(neg, odd bool, cmp int) bool {
	switch mode {
	case ToNearestEven:
		return cmp > 0 || cmp == 0 && odd
	case ToNearestAway:
		return cmp >= 0
	case ToNearestZero:
		return cmp > 0
	case ToZero:
		return false
	case AwayFromZero:
		return true
	case ToNegativeInf:
		return neg
	case ToPositiveInf:
		return !neg
	}
	panic("unreachable")
}
