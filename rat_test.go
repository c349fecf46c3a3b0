package bignum

import (
	"encoding"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRat_ZeroValue(t *testing.T) {
	var r Rat
	assert.Equal(t, "0", r.String())
	assert.Equal(t, "0", r.Num().String())
	assert.Equal(t, "1", r.Denom().String())
	assert.True(t, r.IsZero())
	assert.True(t, r.IsInt())
	assert.True(t, r.Equal(MustNewRat(0, 7)))
	assert.Equal(t, "1/2", r.Add(MustNewRat(1, 2)).String())
}

func TestRat_Interfaces(t *testing.T) {
	var r any = Rat{}
	assert.Implements(t, (*fmt.Stringer)(nil), r)
	assert.Implements(t, (*fmt.Formatter)(nil), r)
	assert.Implements(t, (*encoding.TextMarshaler)(nil), r)

	r = &Rat{}
	assert.Implements(t, (*encoding.TextUnmarshaler)(nil), r)
	assert.Implements(t, (*fmt.Scanner)(nil), r)
}

func TestNewRat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num, den       int64
			want, wantDen string
		}{
			{6, 2, "3", "1"},
			{-1, -2, "1/2", "2"},
			{1, -2, "-1/2", "2"},
			{-1, 2, "-1/2", "2"},
			{0, 5, "0", "1"},
			{0, -5, "0", "1"},
			{10, 4, "5/2", "2"},
			{math.MinInt64, -1, "9223372036854775808", "1"},
			{math.MinInt64, math.MinInt64, "1", "1"},
			{2, math.MinInt64, "-1/4611686018427387904", "4611686018427387904"},
			{math.MaxInt64, math.MaxInt64 - 1, "9223372036854775807/9223372036854775806", "9223372036854775806"},
		}
		for _, tt := range tests {
			got, err := NewRat(tt.num, tt.den)
			require.NoError(t, err, "NewRat(%v, %v)", tt.num, tt.den)
			assert.Equal(t, tt.want, got.String(), "NewRat(%v, %v)", tt.num, tt.den)
			assert.Equal(t, tt.wantDen, got.Denom().String(), "NewRat(%v, %v).Denom()", tt.num, tt.den)
		}
	})

	t.Run("error", func(t *testing.T) {
		got, err := NewRat(1, 0)
		assert.ErrorIs(t, err, ErrZeroDenominator)
		assert.True(t, got.IsZero())

		assert.Panics(t, func() { MustNewRat(1, 0) })
	})
}

func TestNewRatFromInt(t *testing.T) {
	got, err := NewRatFromInt(MustParse("-123456789012345678901234567890"), MustParse("-30"))
	require.NoError(t, err)
	assert.Equal(t, "4115226300411522630041152263", got.String())

	_, err = NewRatFromInt(NewInt(1), Int{})
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestParseRat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num, den, want string
		}{
			{"0005", "0025", "1/5"},
			{"-6", "-4", "3/2"},
			{"6", "-4", "-3/2"},
			{"+6", "4", "3/2"},
			{"0", "-17", "0"},
			{"100000000000000000000", "300000000000000000000", "1/3"},
		}
		for _, tt := range tests {
			got, err := ParseRat(tt.num, tt.den)
			require.NoError(t, err, "ParseRat(%q, %q)", tt.num, tt.den)
			assert.Equal(t, tt.want, got.String(), "ParseRat(%q, %q)", tt.num, tt.den)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			num, den string
			wantErr  error
		}{
			"zero denominator 1": {"1", "0", ErrZeroDenominator},
			"zero denominator 2": {"1", "0000", ErrZeroDenominator},
			"zero denominator 3": {"0", "-0", ErrZeroDenominator},
			"bad numerator":      {"x", "1", ErrInvalidFormat},
			"bad denominator":    {"1", "2.5", ErrInvalidFormat},
			"empty numerator":    {"", "1", ErrInvalidFormat},
			"empty denominator":  {"1", "", ErrInvalidFormat},
		}
		for name, tt := range tests {
			_, err := ParseRat(tt.num, tt.den)
			assert.ErrorIs(t, err, tt.wantErr, name)
		}
		assert.Panics(t, func() { MustParseRat("1", "0") })
	})
}

func TestParseRatString(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s, want string
		}{
			{"3/4", "3/4"},
			{"-6/8", "-3/4"},
			{"6/-8", "-3/4"},
			{"5", "5"},
			{"-0", "0"},
			{"10/5", "2"},
		}
		for _, tt := range tests {
			got, err := ParseRatString(tt.s)
			require.NoError(t, err, "ParseRatString(%q)", tt.s)
			assert.Equal(t, tt.want, got.String(), "ParseRatString(%q)", tt.s)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s       string
			wantErr error
		}{
			"empty":            {"", ErrInvalidFormat},
			"slash only":       {"/", ErrInvalidFormat},
			"two slashes":      {"1/2/3", ErrInvalidFormat},
			"spaces":           {"1 / 2", ErrInvalidFormat},
			"zero denominator": {"1/0", ErrZeroDenominator},
		}
		for name, tt := range tests {
			_, err := ParseRatString(tt.s)
			assert.ErrorIs(t, err, tt.wantErr, name)
		}
	})
}

func TestRat_String(t *testing.T) {
	tests := []string{"0", "1", "-1", "1/2", "-1/2", "123456789012345678901/2"}
	for _, s := range tests {
		r, err := ParseRatString(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())

		text, err := r.MarshalText()
		require.NoError(t, err)
		var got Rat
		require.NoError(t, got.UnmarshalText(text))
		assert.True(t, got.Equal(r), "UnmarshalText(%q) = %v", text, got)
	}
	var r Rat
	assert.ErrorIs(t, r.UnmarshalText([]byte("1/x")), ErrInvalidFormat)
}

func TestRat_Format(t *testing.T) {
	tests := []struct {
		r      Rat
		format string
		want   string
	}{
		{MustNewRat(-1, 3), "%v", "-1/3"},
		{MustNewRat(-1, 3), "%s", "-1/3"},
		{MustNewRat(-1, 3), "%q", "\"-1/3\""},
		{MustNewRat(1, 3), "%+v", "+1/3"},
		{MustNewRat(1, 3), "%6v", "   1/3"},
		{MustNewRat(1, 3), "%-6v|", "1/3   |"},
		{MustNewRat(4, 2), "%v", "2"},
		{MustNewRat(1, 3), "%x", "%!x(bignum.Rat=1/3)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fmt.Sprintf(tt.format, tt.r), "fmt.Sprintf(%q, %v)", tt.format, tt.r)
	}
}

func TestRat_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want []string
		}{
			{"3/4", []string{"3/4"}},
			{"3 / 4", []string{"3/4"}},
			{"  -6/8", []string{"-3/4"}},
			{"5", []string{"5"}},
			{"1/2 3", []string{"1/2", "3"}},
			{"1/2\n2 /4", []string{"1/2", "1/2"}},
		}
		for _, tt := range tests {
			got := make([]Rat, len(tt.want))
			args := make([]any, len(got))
			for i := range got {
				args[i] = &got[i]
			}
			n, err := fmt.Sscan(tt.s, args...)
			require.NoError(t, err, "fmt.Sscan(%q)", tt.s)
			assert.Equal(t, len(tt.want), n)
			for i, want := range tt.want {
				assert.Equal(t, want, got[i].String(), "fmt.Sscan(%q) item %v", tt.s, i)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s       string
			wantErr error
		}{
			"zero denominator":  {"1/0", ErrZeroDenominator},
			"bad numerator":     {"a/2", ErrInvalidFormat},
			"bad denominator":   {"1/b", ErrInvalidFormat},
			"missing numerator": {"/4", ErrInvalidFormat},
			"sign only":         {"-", ErrInvalidFormat},
		}
		for name, tt := range tests {
			r := MustNewRat(7, 9)
			_, err := fmt.Sscan(tt.s, &r)
			assert.ErrorIs(t, err, tt.wantErr, name)
			assert.Equal(t, "7/9", r.String(), name)
		}
	})
}

func TestRat_Arith(t *testing.T) {
	tests := []struct {
		r, s               string
		sum, diff, product string
		quotient           string
	}{
		{"1/2", "1/3", "5/6", "1/6", "1/6", "3/2"},
		{"1/4", "1/4", "1/2", "0", "1/16", "1"},
		{"1/2", "-1/2", "0", "1", "-1/4", "-1"},
		{"2/3", "3/4", "17/12", "-1/12", "1/2", "8/9"},
		{"0", "5/7", "5/7", "-5/7", "0", "0"},
		{"-3", "1/3", "-8/3", "-10/3", "-1", "-9"},
	}
	for _, tt := range tests {
		r, err := ParseRatString(tt.r)
		require.NoError(t, err)
		s, err := ParseRatString(tt.s)
		require.NoError(t, err)

		assert.Equal(t, tt.sum, r.Add(s).String(), "%v + %v", r, s)
		assert.Equal(t, tt.diff, r.Sub(s).String(), "%v - %v", r, s)
		assert.Equal(t, tt.product, r.Mul(s).String(), "%v * %v", r, s)
		q, err := r.Quo(s)
		require.NoError(t, err, "%v / %v", r, s)
		assert.Equal(t, tt.quotient, q.String(), "%v / %v", r, s)
		assert.True(t, q.Mul(s).Equal(r), "(%v / %v) * %v = %v", r, s, s, q.Mul(s))
	}
}

func TestRat_Quo(t *testing.T) {
	r := MustNewRat(1, 2)
	q, err := r.Quo(Rat{})
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.True(t, q.IsZero())
	assert.Panics(t, func() { r.MustQuo(Rat{}) })
	assert.Equal(t, "2", r.MustQuo(MustNewRat(1, 4)).String())
}

func TestRat_Inv(t *testing.T) {
	got, err := MustNewRat(-2, 3).Inv()
	require.NoError(t, err)
	assert.Equal(t, "-3/2", got.String())
	assert.Equal(t, "1/5", MustNewRat(5, 1).MustInv().String())

	_, err = Rat{}.Inv()
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestRat_NegAbs(t *testing.T) {
	r := MustNewRat(-2, 3)
	assert.Equal(t, "2/3", r.Neg().String())
	assert.Equal(t, "2/3", r.Abs().String())
	assert.Equal(t, "-2/3", r.Plus().String())
	assert.Equal(t, "0", Rat{}.Neg().String())
	assert.Equal(t, -1, r.Sign())
	assert.Equal(t, 1, r.Neg().Sign())
	assert.True(t, r.IsNeg())
	assert.True(t, r.Neg().IsPos())
	assert.False(t, r.IsInt())
}

func TestRat_Cmp(t *testing.T) {
	tests := []struct {
		r, s string
		want int
	}{
		{"1/3", "1/2", -1},
		{"1/2", "1/3", 1},
		{"-1/2", "1/3", -1},
		{"-1/2", "-1/3", -1},
		{"2/4", "1/2", 0},
		{"0", "-0/5", 0},
		{"100000000000000000001/100000000000000000000", "1", 1},
	}
	for _, tt := range tests {
		r, err := ParseRatString(tt.r)
		require.NoError(t, err)
		s, err := ParseRatString(tt.s)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.Cmp(s), "%v.Cmp(%v)", r, s)
		assert.Equal(t, tt.want == 0, r.Equal(s))
		assert.Equal(t, tt.want < 0, r.Less(s))
		assert.Equal(t, tt.want <= 0, r.LessEq(s))
		assert.Equal(t, tt.want > 0, r.Greater(s))
		assert.Equal(t, tt.want >= 0, r.GreaterEq(s))
	}
}

func TestRat_Float64(t *testing.T) {
	got, err := MustNewRat(1, 4).Float64()
	require.NoError(t, err)
	assert.Equal(t, 0.25, got)

	got, err = MustNewRat(-1, 3).Float64()
	require.NoError(t, err)
	assert.InDelta(t, -1.0/3.0, got, 1e-15)

	huge, err := NewRatFromInt(MustParse("1"+strings.Repeat("0", 400)), NewInt(3))
	require.NoError(t, err)
	_, err = huge.Float64()
	assert.ErrorIs(t, err, ErrNumericOverflow)
}

func TestRat_Sqrt(t *testing.T) {
	got, err := MustNewRat(9, 4).Sqrt()
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)
	assert.Equal(t, 0.5, MustNewRat(1, 4).MustSqrt())

	_, err = MustNewRat(-1, 4).Sqrt()
	assert.ErrorIs(t, err, ErrNegativeSqrt)
	assert.Panics(t, func() { MustNewRat(-1, 4).MustSqrt() })
}

func TestRat_Isqrt(t *testing.T) {
	tests := []struct {
		r    Rat
		want string
	}{
		{MustNewRat(9, 4), "1"},
		{MustNewRat(10, 1), "3"},
		{MustNewRat(1, 2), "0"},
		{MustNewRat(400, 3), "11"},
	}
	for _, tt := range tests {
		got, err := tt.r.Isqrt()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), "%v.Isqrt()", tt.r)
	}

	_, err := MustNewRat(-1, 2).Isqrt()
	assert.ErrorIs(t, err, ErrNegativeSqrt)
}

func TestRat_Assign(t *testing.T) {
	r := MustNewRat(1, 2)
	saved := r
	r.AddAssign(MustNewRat(1, 3))
	assert.Equal(t, "5/6", r.String())
	r.SubAssign(MustNewRat(1, 6))
	assert.Equal(t, "2/3", r.String())
	r.MulAssign(MustNewRat(3, 4))
	assert.Equal(t, "1/2", r.String())
	require.NoError(t, r.QuoAssign(MustNewRat(1, 4)))
	assert.Equal(t, "2", r.String())

	assert.ErrorIs(t, r.QuoAssign(Rat{}), ErrDivisionByZero)
	assert.Equal(t, "2", r.String())
	assert.Equal(t, "1/2", saved.String())
}
