package context

import (
	"errors"
	"testing"

	decimal "github.com/db47h/decfmt"
)

func TestContext_NaN(t *testing.T) {
	ctx := New(10, decimal.ToNearestEven)
	z := ctx.NewInt64(42)
	zero := ctx.New()
	ctx.Quo(z, zero, zero)
	if s := z.String(); s != "42" {
		t.Errorf("z was modified by a NaN operation: got %s", s)
	}
	// further operations are no-ops
	ctx.Add(z, z, ctx.NewInt64(1))
	if s := z.String(); s != "42" {
		t.Errorf("z was modified after a NaN: got %s", s)
	}
	err := ctx.Err()
	var nan decimal.ErrNaN
	if !errors.As(err, &nan) {
		t.Fatalf("expected ErrNaN, got %v", err)
	}
	if err = ctx.Err(); err != nil {
		t.Errorf("Err did not clear the error state: %v", err)
	}
	ctx.Add(z, z, ctx.NewInt64(1))
	if s := z.String(); s != "43" {
		t.Errorf("got %s, want 43", s)
	}
}

func TestContext_RoundToMultipleZero(t *testing.T) {
	ctx := New(10, decimal.ToNearestEven)
	z := ctx.NewInt64(7)
	ctx.RoundToMultiple(z, z, ctx.New())
	if ctx.Err() == nil {
		t.Fatal("rounding to a multiple of zero did not fail")
	}
	if s := z.String(); s != "7" {
		t.Errorf("got %s, want 7", s)
	}
}

func TestContext_Aliasing(t *testing.T) {
	ctx := New(5, decimal.ToNearestEven)
	x, _ := ctx.NewString("1.5")
	ctx.Add(x, x, x)
	if s := x.String(); s != "3" {
		t.Errorf("x+x: got %s, want 3", s)
	}
	ctx.Mul(x, x, x)
	if s := x.String(); s != "9" {
		t.Errorf("x*x: got %s, want 9", s)
	}
	ctx.Neg(x, x)
	if s := x.String(); s != "-9" {
		t.Errorf("-x: got %s, want -9", s)
	}
	ctx.Abs(x, x)
	if s := x.String(); s != "9" {
		t.Errorf("|x|: got %s, want 9", s)
	}
}

func TestContext_Round(t *testing.T) {
	for _, tc := range []struct {
		mode decimal.RoundingMode
		x    string
		want string
	}{
		{decimal.ToNearestEven, "12.345", "12.34"},
		{decimal.ToNearestAway, "12.345", "12.35"},
		{decimal.ToNearestZero, "12.345", "12.34"},
		{decimal.ToZero, "-12.349", "-12.34"},
		{decimal.AwayFromZero, "-12.341", "-12.35"},
		{decimal.ToNegativeInf, "-12.341", "-12.35"},
		{decimal.ToPositiveInf, "-12.349", "-12.34"},
	} {
		ctx := New(4, tc.mode)
		x, _, err := decimal.ParseDecimal(tc.x, 0, 10, decimal.ToNearestEven)
		if err != nil {
			t.Fatal(err)
		}
		z := ctx.Round(new(decimal.Decimal), x)
		if s := z.String(); s != tc.want {
			t.Errorf("%s(%s) = %s, want %s", tc.mode, tc.x, s, tc.want)
		}
		if z.Prec() != 4 || z.Mode() != tc.mode {
			t.Errorf("%s(%s): prec/mode not set: %d %s", tc.mode, tc.x, z.Prec(), z.Mode())
		}
	}
}
