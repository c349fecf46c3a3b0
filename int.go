package bignum

import (
	"errors"
	"fmt"
	"math"
)

// Int type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// Int values are immutable, so they are safe for concurrent use by multiple
// goroutines and can be freely copied.
//
// An integer is a struct with two fields:
//
//   - Sign: a boolean indicating whether the integer is negative.
//   - Magnitude: the absolute value of the integer stored as decimal digits,
//     most significant digit first.
//
// Negative zeros are not supported, so every value has exactly one
// representation.
type Int struct {
	neg bool   // indicates whether the integer is negative
	mag digits // the absolute value, nil is treated as 0
}

// Errors returned by functions in this package.
// Use [errors.Is] to match them, as they are usually wrapped with context.
var (
	ErrInvalidFormat   = errors.New("invalid format")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrZeroDenominator = errors.New("zero denominator")
	ErrNegativeSqrt    = errors.New("square root of negative number")
	ErrNumericOverflow = errors.New("numeric overflow")
)

func newInt(neg bool, mag digits) Int {
	mag = mag.trim()
	if mag.isZero() {
		return Int{}
	}
	return Int{neg: neg, mag: mag}
}

func newIntFromUint64(neg bool, u uint64) Int {
	return newInt(neg, newDigitsFromUint64(u))
}

// abs64 returns |v| computed in unsigned arithmetic,
// so that math.MinInt64 does not overflow.
func abs64(v int64) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return u
}

// NewInt returns an integer equal to v.
func NewInt(v int64) Int {
	return newIntFromUint64(v < 0, abs64(v))
}

// Parse converts a string to an integer.
// The input string must be in the following format:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits
//
// Parse removes leading zeros, so "-0000" is parsed as 0.
// Whitespace is not allowed anywhere in the string.
// Use [Int.Scan] to read whitespace-separated integers from a stream.
//
// Parse returns [ErrInvalidFormat] if the string is empty, contains only
// a sign or contains any character other than a leading sign and digits.
func Parse(s string) (Int, error) {
	var (
		pos   int
		width int
		neg   bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		return Int{}, fmt.Errorf("empty string: %w", ErrInvalidFormat)
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	if pos == width {
		return Int{}, fmt.Errorf("no digits in %q: %w", s, ErrInvalidFormat)
	}

	// Magnitude
	mag := make(digits, 0, width-pos)
	for ; pos < width; pos++ {
		c := s[pos]
		if c < '0' || c > '9' {
			return Int{}, fmt.Errorf("invalid character %q: %w", c, ErrInvalidFormat)
		}
		mag = append(mag, c-'0')
	}

	return newInt(neg, mag), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of an integer.
// The sign is written only for negative integers.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	mag := x.magnitude()
	buf := make([]byte, 0, len(mag)+1)
	if x.IsNeg() {
		buf = append(buf, '-')
	}
	buf = mag.appendText(buf)
	return string(buf)
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -12345
//	%q:        "-12345"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	formatNumber(state, verb, x.IsNeg(), x.magnitude().appendText(nil), "bignum.Int")
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// Scan implements the [fmt.Scanner] interface, so integers can be read
// with [fmt.Fscan] and friends.
// Scan skips leading whitespace, reads the next whitespace-delimited token
// and validates it with [Parse].
// If the token is not a valid integer, Scan returns an error and leaves
// x unchanged.
//
// [fmt.Scanner]: https://pkg.go.dev/fmt#Scanner
func (x *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return fmt.Errorf("bad verb %%%c for %T", verb, x)
	}
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	s := string(tok)
	if s == "" || s == "-" {
		return fmt.Errorf("scanning token %q: %w", s, ErrInvalidFormat)
	}
	y, err := Parse(s)
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// magnitude returns the absolute value of x as normalized digits.
func (x Int) magnitude() digits {
	if len(x.mag) == 0 {
		return digitsZero
	}
	return x.mag
}

// Prec returns number of digits in the absolute value of x.
// 0 has one digit.
func (x Int) Prec() int {
	return x.magnitude().prec()
}

// Int64 returns x as int64.
// If x cannot be represented as int64, the result is (0, false).
func (x Int) Int64() (int64, bool) {
	u, ok := x.magnitude().uint64()
	if !ok {
		return 0, false
	}
	if x.IsNeg() {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Float64 returns a floating-point approximation of x.
// Float64 returns [ErrNumericOverflow] if x is outside the range of float64.
func (x Int) Float64() (float64, error) {
	f, ok := x.magnitude().float64()
	if !ok {
		return 0, fmt.Errorf("converting %v digit(s) to float64: %w", x.Prec(), ErrNumericOverflow)
	}
	if x.IsNeg() {
		f = -f
	}
	return f, nil
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.IsZero():
		return 0
	}
	return 1
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.neg
}

// IsPos returns true if x > 0.
func (x Int) IsPos() bool {
	return !x.neg && !x.IsZero()
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.magnitude().isZero()
}

// IsOne returns true if x == -1 or x == 1.
func (x Int) IsOne() bool {
	return x.magnitude().isOne()
}

// Plus returns x.
func (x Int) Plus() Int {
	return x
}

// Neg returns x with opposite sign.
// The negation of 0 is 0.
func (x Int) Neg() Int {
	return newInt(!x.IsNeg(), x.magnitude())
}

// Abs returns absolute value of x.
func (x Int) Abs() Int {
	return newInt(false, x.magnitude())
}

// Add returns sum of x and y.
func (x Int) Add(y Int) Int {
	xmag, ymag := x.magnitude(), y.magnitude()

	// Special case: same signs
	if x.IsNeg() == y.IsNeg() {
		return newInt(x.IsNeg(), xmag.add(ymag))
	}

	// General case: the sign of the larger magnitude wins
	switch xmag.cmp(ymag) {
	case 1:
		return newInt(x.IsNeg(), xmag.sub(ymag))
	case -1:
		return newInt(y.IsNeg(), ymag.sub(xmag))
	default:
		return Int{}
	}
}

// Sub returns difference of x and y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns product of x and y.
func (x Int) Mul(y Int) Int {
	xmag, ymag := x.magnitude(), y.magnitude()
	neg := x.IsNeg() != y.IsNeg()

	// Special cases
	switch {
	case xmag.isZero() || ymag.isZero():
		return Int{}
	case xmag.isOne():
		return newInt(neg, ymag)
	case ymag.isOne():
		return newInt(neg, xmag)
	}

	// General case
	return newInt(neg, xmag.mul(ymag))
}

// Quo returns the quotient of x and y truncated towards zero.
//
// Quo returns [ErrDivisionByZero] if y is 0.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	if err != nil {
		return Int{}, err
	}
	return q, nil
}

// Rem returns the remainder of x and y.
// The remainder has the same sign as x, and its absolute value
// is less than the absolute value of y:
//
//	 7 %  3 =  1
//	 7 % -3 =  1
//	-7 %  3 = -1
//	-7 % -3 = -1
//
// Rem returns [ErrDivisionByZero] if y is 0.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	if err != nil {
		return Int{}, err
	}
	return r, nil
}

// QuoRem returns the quotient q and remainder r of x and y such that
// x = q * y + r, where q is truncated towards zero and r has the
// same sign as x.
// Also see methods [Int.Quo] and [Int.Rem].
//
// QuoRem returns [ErrDivisionByZero] if y is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	xmag, ymag := x.magnitude(), y.magnitude()

	// Special case: zero divisor
	if ymag.isZero() {
		return Int{}, Int{}, fmt.Errorf("computing [%v / %v]: %w", x, y, ErrDivisionByZero)
	}

	// Special case: dividend is smaller than divisor
	if xmag.cmp(ymag) < 0 {
		return Int{}, x, nil
	}

	// General case
	qmag, rmag := xmag.quoRem(ymag)
	q = newInt(x.IsNeg() != y.IsNeg(), qmag)
	r = newInt(x.IsNeg(), rmag)
	return q, r, nil
}

// Sqrt returns a floating-point approximation of the square root of x.
// The magnitude of x is first converted to float64, so the result is
// exact only while x is small enough to be represented exactly.
//
// Sqrt returns:
//   - [ErrNegativeSqrt] if x is negative;
//   - [ErrNumericOverflow] if x is outside the range of float64.
func (x Int) Sqrt() (float64, error) {
	if x.IsNeg() {
		return 0, fmt.Errorf("computing sqrt(%v): %w", x, ErrNegativeSqrt)
	}
	f, err := x.Float64()
	if err != nil {
		return 0, fmt.Errorf("computing sqrt(%v): %w", x, err)
	}
	return math.Sqrt(f), nil
}

// Isqrt returns the integer square root of x, that is the largest
// integer z such that z * z <= x.
// Unlike [Int.Sqrt], Isqrt is exact for integers of any size.
//
// Isqrt returns [ErrNegativeSqrt] if x is negative.
func (x Int) Isqrt() (Int, error) {
	if x.IsNeg() {
		return Int{}, fmt.Errorf("computing isqrt(%v): %w", x, ErrNegativeSqrt)
	}
	n := x.magnitude()

	// Special case
	if n.isZero() {
		return Int{}, nil
	}

	// General case: Newton's iteration from above,
	// 10^⌈prec/2⌉ is never less than the root.
	z := newDigitsFromPow10((n.prec() + 1) / 2)
	for {
		q, _ := n.quoRem(z)
		y, _ := z.add(q).quoRem(digitsTwo)
		if y.cmp(z) >= 0 {
			return newInt(false, z), nil
		}
		z = y
	}
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	// Special case: different signs
	switch {
	case x.IsNeg() && !y.IsNeg():
		return -1
	case !x.IsNeg() && y.IsNeg():
		return 1
	}

	// General case: for negatives the larger magnitude is the smaller value
	c := x.magnitude().cmp(y.magnitude())
	if x.IsNeg() {
		return -c
	}
	return c
}

// CmpAbs compares absolute values of x and y and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| == |y|
//	+1 if |x| > |y|
func (x Int) CmpAbs(y Int) int {
	return x.magnitude().cmp(y.magnitude())
}

// Equal returns true if x == y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Less returns true if x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// LessEq returns true if x <= y.
func (x Int) LessEq(y Int) bool {
	return x.Cmp(y) <= 0
}

// Greater returns true if x > y.
func (x Int) Greater(y Int) bool {
	return x.Cmp(y) > 0
}

// GreaterEq returns true if x >= y.
func (x Int) GreaterEq(y Int) bool {
	return x.Cmp(y) >= 0
}

// Max returns maximum of x and y.
func (x Int) Max(y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns minimum of x and y.
func (x Int) Min(y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}
