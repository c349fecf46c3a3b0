package bignum

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Rat type is a representation of an exact rational number num/den.
// The zero value is the numeric value of 0.
// Like [Int], Rat values are immutable and can be freely copied.
//
// Every Rat is kept in lowest terms:
//
//   - the denominator is always positive, the sign is carried by the numerator;
//   - the numerator and the denominator have no common divisor other than 1;
//   - 0 is always represented as 0/1.
//
// Since every value is normalized, two values are equal
// if and only if their numerators and denominators are equal.
type Rat struct {
	num Int // numerator, carries the sign
	den Int // denominator, 0 is treated as 1
}

// newRat returns num/den reduced to lowest terms.
func newRat(num, den Int) (Rat, error) {
	if den.IsZero() {
		return Rat{}, ErrZeroDenominator
	}

	neg := num.IsNeg() != den.IsNeg()
	nmag, dmag := num.magnitude(), den.magnitude()

	// Special case: zero numerator
	if nmag.isZero() {
		return Rat{}, nil
	}

	// General case
	if g := nmag.gcd(dmag); !g.isOne() {
		nmag, _ = nmag.quoRem(g)
		dmag, _ = dmag.quoRem(g)
	}
	return Rat{num: newInt(neg, nmag), den: newInt(false, dmag)}, nil
}

// normalize is like newRat but panics if den is zero.
// It is used where den is known to be non-zero.
func normalize(num, den Int) Rat {
	r, err := newRat(num, den)
	if err != nil {
		panic(fmt.Sprintf("normalize(%v, %v) failed: %v", num, den, err)) // unreachable
	}
	return r
}

// NewRat returns a rational number equal to num/den in lowest terms.
// The fraction is reduced using native integer arithmetic
// before it is converted to [Int].
//
// NewRat returns [ErrZeroDenominator] if den is 0.
func NewRat(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, fmt.Errorf("creating %v/%v: %w", num, den, ErrZeroDenominator)
	}
	neg := (num < 0) != (den < 0)
	n, d := abs64(num), abs64(den)

	// Reduction
	if g := gcd64(n, d); g > 1 {
		n /= g
		d /= g
	}

	// Special case: zero numerator
	if n == 0 {
		return Rat{}, nil
	}

	// General case
	return Rat{num: newIntFromUint64(neg, n), den: newIntFromUint64(false, d)}, nil
}

// MustNewRat is like [NewRat] but panics if the denominator is 0.
func MustNewRat(num, den int64) Rat {
	r, err := NewRat(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNewRat(%v, %v) failed: %v", num, den, err))
	}
	return r
}

// NewRatFromInt returns a rational number equal to num/den in lowest terms.
//
// NewRatFromInt returns [ErrZeroDenominator] if den is 0.
func NewRatFromInt(num, den Int) (Rat, error) {
	r, err := newRat(num, den)
	if err != nil {
		return Rat{}, fmt.Errorf("creating %v/%v: %w", num, den, err)
	}
	return r, nil
}

// ParseRat converts a numerator and a denominator, each in the format
// accepted by [Parse], to a rational number in lowest terms.
//
// ParseRat returns:
//   - [ErrInvalidFormat] if either string is not a valid integer;
//   - [ErrZeroDenominator] if the denominator is 0, including strings
//     such as "0000".
func ParseRat(num, den string) (Rat, error) {
	n, err := Parse(num)
	if err != nil {
		return Rat{}, fmt.Errorf("parsing numerator: %w", err)
	}
	d, err := Parse(den)
	if err != nil {
		return Rat{}, fmt.Errorf("parsing denominator: %w", err)
	}
	return NewRatFromInt(n, d)
}

// MustParseRat is like [ParseRat] but panics if the strings cannot be parsed.
func MustParseRat(num, den string) Rat {
	r, err := ParseRat(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustParseRat(%q, %q) failed: %v", num, den, err))
	}
	return r
}

// ParseRatString converts a string in the format produced by [Rat.String]
// to a rational number:
//
//	rational-string ::= numeric-string [ '/' numeric-string ]
//
// where numeric-string is the format accepted by [Parse].
// The fraction does not have to be in lowest terms.
func ParseRatString(s string) (Rat, error) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		den = "1"
	}
	return ParseRat(num, den)
}

// Num returns the numerator of r.
// The numerator carries the sign of r.
func (r Rat) Num() Int {
	return r.num
}

// Denom returns the denominator of r.
// The denominator is always positive.
func (r Rat) Denom() Int {
	if r.den.IsZero() {
		return NewInt(1)
	}
	return r.den
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a rational number.
// The denominator is omitted if it is equal to 1:
//
//	-1/2
//	3
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rat) String() string {
	if r.IsNeg() {
		return "-" + string(r.body())
	}
	return string(r.body())
}

// body returns the text of |r|.
func (r Rat) body() []byte {
	buf := r.num.magnitude().appendText(nil)
	if d := r.Denom(); !d.IsOne() {
		buf = append(buf, '/')
		buf = d.magnitude().appendText(buf)
	}
	return buf
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -1/3
//	%q:    "-1/3"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Rat) Format(state fmt.State, verb rune) {
	formatNumber(state, verb, r.IsNeg(), r.body(), "bignum.Rat")
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseRatString].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (r *Rat) UnmarshalText(text []byte) error {
	var err error
	*r, err = ParseRatString(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Rat.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rat) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Scan implements the [fmt.Scanner] interface.
// Scan skips leading whitespace and reads a numerator token.
// If the token is followed by a '/', optionally surrounded by spaces,
// a denominator token is read as well, so "3/4", "3 / 4" and "3" are all
// accepted.
// If the input is not a valid rational number, Scan returns an error
// and leaves r unchanged.
//
// [fmt.Scanner]: https://pkg.go.dev/fmt#Scanner
func (r *Rat) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 's', 'v':
	default:
		return fmt.Errorf("bad verb %%%c for %T", verb, r)
	}

	// Numerator
	tok, err := state.Token(true, func(c rune) bool {
		return c != '/' && !unicode.IsSpace(c)
	})
	if err != nil {
		return err
	}
	num := string(tok)
	if num == "" || num == "-" {
		return fmt.Errorf("scanning numerator %q: %w", num, ErrInvalidFormat)
	}

	// Delimiter
	for {
		c, _, err := state.ReadRune()
		switch {
		case err != nil:
			return r.scanned(num, "1")
		case c == '/':
		case c != '\n' && unicode.IsSpace(c):
			continue
		default:
			if err := state.UnreadRune(); err != nil {
				return err
			}
			return r.scanned(num, "1")
		}
		break
	}

	// Denominator
	tok, err = state.Token(true, nil)
	if err != nil {
		return err
	}
	den := string(tok)
	if den == "" {
		return fmt.Errorf("scanning denominator of %q: %w", num, ErrInvalidFormat)
	}
	return r.scanned(num, den)
}

// scanned sets r to num/den if both parts are valid.
func (r *Rat) scanned(num, den string) error {
	s, err := ParseRat(num, den)
	if err != nil {
		return err
	}
	*r = s
	return nil
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r Rat) Sign() int {
	return r.num.Sign()
}

// IsNeg returns true if r < 0.
func (r Rat) IsNeg() bool {
	return r.num.IsNeg()
}

// IsPos returns true if r > 0.
func (r Rat) IsPos() bool {
	return r.num.IsPos()
}

// IsZero returns true if r == 0.
func (r Rat) IsZero() bool {
	return r.num.IsZero()
}

// IsInt returns true if the denominator of r is 1.
func (r Rat) IsInt() bool {
	return r.Denom().IsOne()
}

// Float64 returns a floating-point approximation of r.
// Float64 returns [ErrNumericOverflow] if the numerator or the denominator
// is outside the range of float64.
func (r Rat) Float64() (float64, error) {
	n, err := r.num.Float64()
	if err != nil {
		return 0, fmt.Errorf("converting numerator: %w", err)
	}
	d, err := r.Denom().Float64()
	if err != nil {
		return 0, fmt.Errorf("converting denominator: %w", err)
	}
	return n / d, nil
}

// Plus returns r.
func (r Rat) Plus() Rat {
	return r
}

// Neg returns r with opposite sign.
func (r Rat) Neg() Rat {
	return Rat{num: r.num.Neg(), den: r.den}
}

// Abs returns absolute value of r.
func (r Rat) Abs() Rat {
	return Rat{num: r.num.Abs(), den: r.den}
}

// Inv returns the reciprocal of r.
//
// Inv returns [ErrDivisionByZero] if r is 0.
func (r Rat) Inv() (Rat, error) {
	if r.IsZero() {
		return Rat{}, fmt.Errorf("computing [1 / %v]: %w", r, ErrDivisionByZero)
	}
	return newRat(r.Denom(), r.num)
}

// Add returns sum of r and s.
func (r Rat) Add(s Rat) Rat {
	rnum, rden := r.num, r.Denom()
	snum, sden := s.num, s.Denom()

	// Special case: common denominator
	if rden.Equal(sden) {
		return normalize(rnum.Add(snum), rden)
	}

	// General case
	return normalize(rnum.Mul(sden).Add(snum.Mul(rden)), rden.Mul(sden))
}

// Sub returns difference of r and s.
func (r Rat) Sub(s Rat) Rat {
	rnum, rden := r.num, r.Denom()
	snum, sden := s.num, s.Denom()

	// Special case: common denominator
	if rden.Equal(sden) {
		return normalize(rnum.Sub(snum), rden)
	}

	// General case
	return normalize(rnum.Mul(sden).Sub(snum.Mul(rden)), rden.Mul(sden))
}

// Mul returns product of r and s.
func (r Rat) Mul(s Rat) Rat {
	return normalize(r.num.Mul(s.num), r.Denom().Mul(s.Denom()))
}

// Quo returns the quotient of r and s, that is r multiplied by
// the reciprocal of s.
//
// Quo returns [ErrDivisionByZero] if s is 0.
func (r Rat) Quo(s Rat) (Rat, error) {
	if s.IsZero() {
		return Rat{}, fmt.Errorf("computing [%v / %v]: %w", r, s, ErrDivisionByZero)
	}
	inv, err := s.Inv()
	if err != nil {
		return Rat{}, err
	}
	return r.Mul(inv), nil
}

// Sqrt returns a floating-point approximation of the square root of r.
//
// Sqrt returns:
//   - [ErrNegativeSqrt] if r is negative;
//   - [ErrNumericOverflow] if the numerator or the denominator is
//     outside the range of float64.
func (r Rat) Sqrt() (float64, error) {
	if r.IsNeg() {
		return 0, fmt.Errorf("computing sqrt(%v): %w", r, ErrNegativeSqrt)
	}
	f, err := r.Float64()
	if err != nil {
		return 0, fmt.Errorf("computing sqrt(%v): %w", r, err)
	}
	return math.Sqrt(f), nil
}

// Isqrt returns the largest integer z such that z * z <= r.
//
// Isqrt returns [ErrNegativeSqrt] if r is negative.
func (r Rat) Isqrt() (Int, error) {
	if r.IsNeg() {
		return Int{}, fmt.Errorf("computing isqrt(%v): %w", r, ErrNegativeSqrt)
	}
	q, err := r.num.Quo(r.Denom())
	if err != nil {
		return Int{}, err
	}
	return q.Isqrt()
}

// Cmp compares r and s numerically and returns:
//
//	-1 if r < s
//	 0 if r == s
//	+1 if r > s
//
// The numerators are compared after cross-multiplication by the
// denominators, which are always positive.
func (r Rat) Cmp(s Rat) int {
	return r.num.Mul(s.Denom()).Cmp(s.num.Mul(r.Denom()))
}

// Equal returns true if r == s.
func (r Rat) Equal(s Rat) bool {
	return r.Cmp(s) == 0
}

// Less returns true if r < s.
func (r Rat) Less(s Rat) bool {
	return r.Cmp(s) < 0
}

// LessEq returns true if r <= s.
func (r Rat) LessEq(s Rat) bool {
	return r.Cmp(s) <= 0
}

// Greater returns true if r > s.
func (r Rat) Greater(s Rat) bool {
	return r.Cmp(s) > 0
}

// GreaterEq returns true if r >= s.
func (r Rat) GreaterEq(s Rat) bool {
	return r.Cmp(s) >= 0
}
