// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"strings"
	"testing"
)

var decimalVals = []string{
	"0",
	"1",
	"0.1",
	"2.71828",
	"1234567890",
	"3.14e1234",
	"3.14e-1234",
	"0.738957395793475734757349579759957975985497e100",
	"0.73895739579347546656564656573475734957975995797598589749859834759476745986795497e100",
	"inf",
	"Inf",
}

func TestDecimalGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, test := range decimalVals {
		for _, sign := range []string{"", "+", "-"} {
			for _, prec := range []uint{0, 1, 2, 10, 53, 64, 100, 1000} {
				for _, mode := range []RoundingMode{ToNearestEven, ToNearestZero, ToPositiveInf} {
					medium.Reset() // empty buffer for each test case (in case of failures)
					x := sign + test

					var tx Decimal
					_, _, err := tx.SetMode(mode).Parse(x, 0)
					if err != nil {
						t.Errorf("parsing of %s (%dd, %v) failed (invalid test case): %v", x, prec, mode, err)
						continue
					}

					// tx.Parse(x, 0) picks the number of digits of x as precision. Correct it.
					tx.SetPrec(prec)

					if err := enc.Encode(&tx); err != nil {
						t.Errorf("encoding of %v (%dd, %v) failed: %v", &tx, prec, mode, err)
						continue
					}

					var rx Decimal
					if err := dec.Decode(&rx); err != nil {
						t.Errorf("decoding of %v (%dd, %v) failed: %v", &tx, prec, mode, err)
						continue
					}

					if rx.Cmp(&tx) != 0 || rx.Signbit() != tx.Signbit() {
						t.Errorf("transmission of %s failed: got %s want %s", x, rx.String(), tx.String())
						continue
					}

					if rx.Prec() != prec {
						t.Errorf("transmission of %s's prec failed: got %d want %d", x, rx.Prec(), prec)
					}

					if rx.Mode() != mode {
						t.Errorf("transmission of %s's mode failed: got %s want %s", x, rx.Mode(), mode)
					}

					if rx.Acc() != tx.Acc() {
						t.Errorf("transmission of %s's accuracy failed: got %s want %s", x, rx.Acc(), tx.Acc())
					}
				}
			}
		}
	}
}

func TestDecimalCorruptGob(t *testing.T) {
	var buf bytes.Buffer
	tx := makeDecimal("1.25").SetPrec(10)
	if err := gob.NewEncoder(&buf).Encode(tx); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()

	var rx Decimal
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&rx); err != nil {
		t.Fatal(err)
	}

	if err := gob.NewDecoder(bytes.NewReader(b[:10])).Decode(&rx); err == nil {
		t.Fatal("expected error for truncated stream")
	}
}

func TestDecimalGobDecodeErrors(t *testing.T) {
	for _, test := range []struct {
		buf  []byte
		want string
	}{
		{[]byte{1, 0}, "buffer too small"},
		{[]byte{2, 0, 0, 0, 0, 10}, "encoding version 2 not supported"},
		{[]byte{1, 0x0A, 0, 0, 0, 10}, "buffer too small for finite form"},
		{[]byte{1, 0x0A, 0, 0, 0, 10, 0, 0, 0, 1, 0}, "invalid mantissa"},
		{[]byte{1, 0x0A, 0, 0, 0, 10, 0, 0, 0, 2, 10}, "invalid mantissa"},
		{[]byte{1, 0xEA, 0, 0, 0, 10, 0, 0, 0, 1, 5}, "invalid flags"},
		{[]byte{1, 0x0E, 0, 0, 0, 10}, "invalid flags"},
	} {
		var z Decimal
		err := z.GobDecode(test.buf)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("GobDecode(%v) = %v; want error containing %q", test.buf, err, test.want)
		}
	}

	// an empty buffer decodes to the zero value
	z := makeDecimal("12")
	if err := z.GobDecode(nil); err != nil || z.Sign() != 0 || z.Prec() != 0 {
		t.Errorf("GobDecode(nil) = %v, %s (prec %d)", err, z, z.Prec())
	}
}

func TestDecimalGobDecodeRounding(t *testing.T) {
	x := makeDecimal("1.2345").SetMode(ToZero)
	b, err := x.GobEncode()
	if err != nil {
		t.Fatal(err)
	}
	z := new(Decimal).SetPrec(3).SetMode(AwayFromZero)
	if err := z.GobDecode(b); err != nil {
		t.Fatal(err)
	}
	if got := z.Text('g', -1); got != "1.24" || z.Mode() != AwayFromZero || z.Prec() != 3 {
		t.Errorf("GobDecode into prec 3 = %s (%s, prec %d); want 1.24 (AwayFromZero, prec 3)", got, z.Mode(), z.Prec())
	}
}

func TestDecimalJSONEncoding(t *testing.T) {
	for _, test := range decimalVals {
		for _, sign := range []string{"", "+", "-"} {
			for _, prec := range []uint{0, 1, 2, 10, 53, 64, 100, 1000} {
				if prec > 53 && testing.Short() {
					continue
				}
				x := sign + test
				var tx Decimal
				_, _, err := tx.SetPrec(prec).Parse(x, 0)
				if err != nil {
					t.Errorf("parsing of %s (prec = %d) failed (invalid test case): %v", x, prec, err)
					continue
				}
				b, err := json.Marshal(&tx)
				if err != nil {
					t.Errorf("marshaling of %v (prec = %d) failed: %v", &tx, prec, err)
					continue
				}
				var rx Decimal
				rx.SetPrec(prec)
				if err := json.Unmarshal(b, &rx); err != nil {
					t.Errorf("unmarshaling of %v (prec = %d) failed: %v", &tx, prec, err)
					continue
				}
				if rx.Cmp(&tx) != 0 {
					t.Errorf("JSON encoding of %v (prec = %d) failed: got %v want %v", &tx, prec, &rx, &tx)
				}
			}
		}
	}
}

func TestDecimalMarshalText(t *testing.T) {
	for _, test := range []struct {
		x    *Decimal
		want string
	}{
		{makeDecimal("1234.5678"), "1234.5678"},
		{makeDecimal("-0"), "-0"},
		{makeDecimal("1e100"), "1e+100"},
		{makeDecimal("-Inf"), "-Inf"},
		{nil, "<nil>"},
	} {
		b, err := test.x.MarshalText()
		if err != nil || string(b) != test.want {
			t.Errorf("MarshalText() = %s, %v; want %s", b, err, test.want)
		}
	}

	var z Decimal
	if err := z.UnmarshalText([]byte("1.5x")); err == nil || !strings.Contains(err.Error(), "cannot unmarshal") {
		t.Errorf("UnmarshalText(1.5x) = %v; want error", err)
	}
	z.SetPrec(2)
	if err := z.UnmarshalText([]byte("1.234")); err != nil || z.Text('g', -1) != "1.2" {
		t.Errorf("UnmarshalText(1.234) into prec 2 = %s, %v; want 1.2", z.Text('g', -1), err)
	}
}
