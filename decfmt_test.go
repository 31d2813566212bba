// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"fmt"
	"strings"
	"testing"
)

func TestDecimalText(t *testing.T) {
	for _, test := range []struct {
		x      string
		mode   RoundingMode
		format byte
		prec   int
		want   string
	}{
		{"0", ToNearestEven, 'f', 2, "0.00"},
		{"-0", ToNearestEven, 'f', 0, "-0"},
		{"0", ToNearestEven, 'e', -1, "0e+00"},
		{"0", ToNearestEven, 'e', 2, "0.00e+00"},
		{"0", ToNearestEven, 'g', -1, "0"},

		{"1234.5678", ToNearestEven, 'f', -1, "1234.5678"},
		{"1234.5678", ToNearestEven, 'f', 2, "1234.57"},
		{"1234.5678", ToNearestEven, 'f', 6, "1234.567800"},
		{"1234.5678", ToNearestEven, 'f', 0, "1235"},
		{"1234.5678", ToZero, 'f', 0, "1234"},
		{"1234.5678", ToNearestEven, 'e', -1, "1.2345678e+03"},
		{"1234.5678", ToNearestEven, 'e', 3, "1.235e+03"},
		{"1234.5678", ToNearestEven, 'E', 3, "1.235E+03"},
		{"1234.5678", ToNearestEven, 'g', -1, "1234.5678"},
		{"1234.5678", ToNearestEven, 'g', 3, "1.23e+03"},
		{"1234.5678", ToNearestEven, 'G', 3, "1.23E+03"},
		{"1234.5678", ToNearestEven, 'g', 6, "1234.57"},
		{"-1234.5678", ToNegativeInf, 'g', 6, "-1234.57"},
		{"-1234.5678", ToPositiveInf, 'g', 6, "-1234.56"},

		// rounding uses the mode of x
		{"2.5", ToNearestEven, 'f', 0, "2"},
		{"3.5", ToNearestEven, 'f', 0, "4"},
		{"2.5", ToNearestAway, 'f', 0, "3"},
		{"2.5", ToNearestZero, 'f', 0, "2"},
		{"2.51", ToNearestZero, 'f', 0, "3"},
		{"2.1", AwayFromZero, 'f', 0, "3"},
		{"-2.1", ToPositiveInf, 'f', 0, "-2"},
		{"-0.5", ToNearestEven, 'f', 0, "-0"},
		{"0.05", ToNearestEven, 'f', 1, "0.0"},
		{"0.05", ToNearestAway, 'f', 1, "0.1"},
		{"0.004", AwayFromZero, 'f', 1, "0.1"},
		{"0.004", ToNearestEven, 'f', 1, "0.0"},
		{"9.99", ToNearestEven, 'f', 1, "10.0"},
		{"9.99", ToNearestEven, 'e', 1, "1.0e+01"},

		{"0.000012345", ToNearestEven, 'g', -1, "1.2345e-05"},
		{"0.00012345", ToNearestEven, 'g', -1, "0.00012345"},
		{"123456", ToNearestEven, 'g', -1, "123456"},
		{"1234567", ToNearestEven, 'g', -1, "1.234567e+06"},
		{"1e100", ToNearestEven, 'g', -1, "1e+100"},
		{"1e100", ToNearestEven, 'f', 0, "1" + strings.Repeat("0", 100)},
		{"1e-7", ToNearestEven, 'f', -1, "0.0000001"},

		{"+Inf", ToNearestEven, 'f', 2, "+Inf"},
		{"-Inf", ToNearestEven, 'g', -1, "-Inf"},

		// unsupported formats
		{"1", ToNearestEven, 'p', 0, "%p"},
		{"-1", ToNearestEven, 'x', 0, "%x"},
	} {
		x, _, err := ParseDecimal(test.x, 0, 0, test.mode)
		if err != nil {
			t.Fatal(err)
		}
		if got := x.Text(test.format, test.prec); got != test.want {
			t.Errorf("%s.Text('%c', %d) (%s) = %s; want %s", test.x, test.format, test.prec, test.mode, got, test.want)
		}
	}
}

func TestDecimalString(t *testing.T) {
	for _, test := range []struct {
		x    string
		want string
	}{
		{"0", "0"},
		{"1234.5678", "1234.5678"},
		{"3.14159265358979323846", "3.141592654"},
		{"12345678901", "1.23456789e+10"},
		{"-Inf", "-Inf"},
	} {
		if got := makeDecimal(test.x).String(); got != test.want {
			t.Errorf("%s.String() = %s; want %s", test.x, got, test.want)
		}
	}
}

func TestDecimalFormat(t *testing.T) {
	for _, test := range []struct {
		format string
		value  interface{}
		want   string
	}{
		{"%v", makeDecimal("1234.5678"), "1234.5678"},
		{"%.2f", makeDecimal("1234.5678"), "1234.57"},
		{"%F", makeDecimal("1234.5678"), "1234.567800"},
		{"%e", makeDecimal("1234.5678"), "1.234568e+03"},
		{"%.3E", makeDecimal("1234.5678"), "1.235E+03"},
		{"%g", makeDecimal("1234.5678"), "1234.5678"},
		{"%.3g", makeDecimal("1234.5678"), "1.23e+03"},
		{"%10.2f", makeDecimal("1234.5678"), "   1234.57"},
		{"%-10.2f|", makeDecimal("1234.5678"), "1234.57   |"},
		{"%010.2f", makeDecimal("-1234.5678"), "-001234.57"},
		{"%+.1f", makeDecimal("1234.5678"), "+1234.6"},
		{"% .1f", makeDecimal("1234.5678"), " 1234.6"},
		{"%+.1f", makeDecimal("-1234.5678"), "-1234.6"},

		{"%v", makeDecimal("+Inf"), "+Inf"},
		{"%v", makeDecimal("-Inf"), "-Inf"},
		{"% v", makeDecimal("+Inf"), " Inf"},
		{"%8v", makeDecimal("+Inf"), "    +Inf"},
		{"%08v", makeDecimal("-Inf"), "    -Inf"},
		{"%-8v|", makeDecimal("+Inf"), "+Inf    |"},

		{"%v", (*Decimal)(nil), "<nil>"},
		{"%s", makeDecimal("1.5"), "%!s(*decimal.Decimal=1.5)"},
		{"%d", makeDecimal("1.5"), "%!d(*decimal.Decimal=1.5)"},
	} {
		if got := fmt.Sprintf(test.format, test.value); got != test.want {
			t.Errorf("Sprintf(%q, %v) = %q; want %q", test.format, test.value, got, test.want)
		}
	}
}
