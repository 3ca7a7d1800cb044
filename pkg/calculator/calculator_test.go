package calculator

import (
	"errors"
	"math/big"
	"testing"
)

func rat(t *testing.T, s string) *big.Rat {
	t.Helper()
	r, err := ParseOperand(s)
	if err != nil {
		t.Fatalf("ParseOperand(%q) failed: %v", s, err)
	}
	return r
}

// TestPlus tests the Plus function.
func TestPlus(t *testing.T) {
	result := Plus(rat(t, "2"), rat(t, "2"))
	if FormatRat(result) != "4" {
		t.Errorf("Plus(2, 2) = %s; want 4", FormatRat(result))
	}

	cases := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"-1", "1", "0"},
		{"10", "5", "15"},
		{"1/3", "1/6", "1/2"},
		{"2.5", "1/2", "3"},
	}

	for _, tc := range cases {
		got := Plus(rat(t, tc.a), rat(t, tc.b))
		if FormatRat(got) != tc.want {
			t.Errorf("Plus(%s, %s) = %s; want %s", tc.a, tc.b, FormatRat(got), tc.want)
		}
	}
}

// TestPlusCommutative checks a + b == b + a over a spread of operands.
func TestPlusCommutative(t *testing.T) {
	operands := []string{"0", "1", "-7", "2/3", "-5/4", "123456789", "0.125"}

	for _, as := range operands {
		for _, bs := range operands {
			a, b := rat(t, as), rat(t, bs)
			ab := Plus(a, b)
			ba := Plus(b, a)
			if ab.Cmp(ba) != 0 {
				t.Errorf("Plus(%s, %s) = %s but Plus(%s, %s) = %s",
					as, bs, FormatRat(ab), bs, as, FormatRat(ba))
			}
		}
	}
}

// TestPlusIdentity checks a + 0 == a.
func TestPlusIdentity(t *testing.T) {
	zero := new(big.Rat)
	for _, s := range []string{"0", "4", "-3", "7/2", "-1/1000"} {
		a := rat(t, s)
		if got := Plus(a, zero); got.Cmp(a) != 0 {
			t.Errorf("Plus(%s, 0) = %s; want %s", s, FormatRat(got), s)
		}
	}
}

// TestMinus tests the Minus function.
func TestMinus(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"5", "3", "2"},
		{"3", "5", "-2"},
		{"1/2", "1/3", "1/6"},
	}

	for _, tc := range cases {
		got := Minus(rat(t, tc.a), rat(t, tc.b))
		if FormatRat(got) != tc.want {
			t.Errorf("Minus(%s, %s) = %s; want %s", tc.a, tc.b, FormatRat(got), tc.want)
		}
	}
}

// TestTimes tests the Times function.
func TestTimes(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"0", "5", "0"},
		{"1", "1", "1"},
		{"2", "3", "6"},
		{"-2", "3", "-6"},
		{"2/3", "3/2", "1"},
	}

	for _, tc := range cases {
		got := Times(rat(t, tc.a), rat(t, tc.b))
		if FormatRat(got) != tc.want {
			t.Errorf("Times(%s, %s) = %s; want %s", tc.a, tc.b, FormatRat(got), tc.want)
		}
	}
}

// TestDivide tests the Divide function.
func TestDivide(t *testing.T) {
	result, err := Divide(rat(t, "4"), rat(t, "2"))
	if err != nil {
		t.Fatalf("Divide(4, 2) failed: %v", err)
	}
	if FormatRat(result) != "2" {
		t.Errorf("Divide(4, 2) = %s; want 2", FormatRat(result))
	}

	cases := []struct {
		a, b, want string
	}{
		{"10", "2", "5"},
		{"1", "3", "1/3"},
		{"-6", "4", "-3/2"},
		{"0", "7", "0"},
	}

	for _, tc := range cases {
		got, err := Divide(rat(t, tc.a), rat(t, tc.b))
		if err != nil {
			t.Errorf("Divide(%s, %s) failed: %v", tc.a, tc.b, err)
			continue
		}
		if FormatRat(got) != tc.want {
			t.Errorf("Divide(%s, %s) = %s; want %s", tc.a, tc.b, FormatRat(got), tc.want)
		}
	}
}

// TestDivideByZero checks that a zero divisor always yields
// ErrDivisionByZero, whatever the dividend is.
func TestDivideByZero(t *testing.T) {
	zero := new(big.Rat)
	for _, s := range []string{"1", "0", "-42", "7/3"} {
		_, err := Divide(rat(t, s), zero)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Divide(%s, 0) error = %v; want ErrDivisionByZero", s, err)
		}
	}
}

// TestDivideInverse checks (a / b) * b == a for nonzero b.
func TestDivideInverse(t *testing.T) {
	dividends := []string{"0", "1", "-7", "2/3", "100"}
	divisors := []string{"1", "-1", "3", "7/5", "-1/9"}

	for _, as := range dividends {
		for _, bs := range divisors {
			a, b := rat(t, as), rat(t, bs)
			q, err := Divide(a, b)
			if err != nil {
				t.Fatalf("Divide(%s, %s) failed: %v", as, bs, err)
			}
			if back := Times(q, b); back.Cmp(a) != 0 {
				t.Errorf("Divide(%s, %s) * %s = %s; want %s",
					as, bs, bs, FormatRat(back), as)
			}
		}
	}
}

// TestApply tests operator dispatch.
func TestApply(t *testing.T) {
	cases := []struct {
		op         string
		a, b, want string
	}{
		{"+", "2", "2", "4"},
		{"-", "5", "3", "2"},
		{"*", "2", "3", "6"},
		{"/", "4", "2", "2"},
	}

	for _, tc := range cases {
		got, err := Apply(tc.op, rat(t, tc.a), rat(t, tc.b))
		if err != nil {
			t.Errorf("Apply(%q, %s, %s) failed: %v", tc.op, tc.a, tc.b, err)
			continue
		}
		if FormatRat(got) != tc.want {
			t.Errorf("Apply(%q, %s, %s) = %s; want %s", tc.op, tc.a, tc.b, FormatRat(got), tc.want)
		}
	}

	if _, err := Apply("/", rat(t, "1"), new(big.Rat)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Apply(\"/\", 1, 0) error = %v; want ErrDivisionByZero", err)
	}

	if _, err := Apply("%", rat(t, "1"), rat(t, "2")); err == nil {
		t.Error("Apply(\"%\", 1, 2) should fail for an unsupported operator")
	}
}

// TestParseOperand tests operand parsing.
func TestParseOperand(t *testing.T) {
	valid := []struct {
		in, want string
	}{
		{"4", "4"},
		{"-3/4", "-3/4"},
		{"2.5", "5/2"},
		{"0", "0"},
		{"6/4", "3/2"},
	}

	for _, tc := range valid {
		got, err := ParseOperand(tc.in)
		if err != nil {
			t.Errorf("ParseOperand(%q) failed: %v", tc.in, err)
			continue
		}
		if FormatRat(got) != tc.want {
			t.Errorf("ParseOperand(%q) = %s; want %s", tc.in, FormatRat(got), tc.want)
		}
	}

	for _, in := range []string{"", "abc", "1/0", "2+2"} {
		if _, err := ParseOperand(in); err == nil {
			t.Errorf("ParseOperand(%q) should fail", in)
		}
	}
}

// TestFormatRat tests calculator-style rendering.
func TestFormatRat(t *testing.T) {
	cases := []struct {
		num, den int64
		want     string
	}{
		{4, 2, "2"},
		{1, 3, "1/3"},
		{-6, 4, "-3/2"},
		{0, 5, "0"},
	}

	for _, tc := range cases {
		got := FormatRat(big.NewRat(tc.num, tc.den))
		if got != tc.want {
			t.Errorf("FormatRat(%d/%d) = %s; want %s", tc.num, tc.den, got, tc.want)
		}
	}
}
