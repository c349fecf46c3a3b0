package bignum

import (
	"bytes"
	"math"
)

// digits is an unsigned magnitude stored as decimal digits,
// most significant digit first.
// Normalized digits have no leading zeros and are never empty,
// zero is represented as {0}.
type digits []byte

// karatsubaThreshold is the length of the shorter operand below which
// mul uses grade-school multiplication.
const karatsubaThreshold = 32

var (
	digitsZero = digits{0}
	digitsOne  = digits{1}
	digitsTwo  = digits{2}
)

// newDigitsFromUint64 decomposes x into decimal digits.
func newDigitsFromUint64(x uint64) digits {
	// Special case
	if x == 0 {
		return digitsZero
	}
	// General case
	var buf [20]byte
	pos := len(buf)
	for x != 0 {
		pos--
		buf[pos] = byte(x % 10)
		x /= 10
	}
	z := make(digits, len(buf)-pos)
	copy(z, buf[pos:])
	return z
}

// newDigitsFromPow10 returns 10^power.
func newDigitsFromPow10(power int) digits {
	z := make(digits, power+1)
	z[0] = 1
	return z
}

// trim removes leading zeros, keeping at least one digit.
func (x digits) trim() digits {
	if len(x) == 0 {
		return digitsZero
	}
	i := 0
	for i < len(x)-1 && x[i] == 0 {
		i++
	}
	return x[i:]
}

func (x digits) isZero() bool {
	x = x.trim()
	return x[0] == 0
}

func (x digits) isOne() bool {
	x = x.trim()
	return len(x) == 1 && x[0] == 1
}

// prec returns number of significant digits in x.
// Unlike the decimal coefficients, 0 has one digit.
func (x digits) prec() int {
	return len(x.trim())
}

// cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x digits) cmp(y digits) int {
	x, y = x.trim(), y.trim()
	switch {
	case len(x) < len(y):
		return -1
	case len(y) < len(x):
		return 1
	}
	return bytes.Compare(x, y)
}

// add calculates x + y.
func (x digits) add(y digits) digits {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(digits, len(x)+1)
	var carry byte
	for i := 1; i <= len(x); i++ {
		s := x[len(x)-i] + carry
		if i <= len(y) {
			s += y[len(y)-i]
		}
		carry = s / 10
		z[len(z)-i] = s % 10
	}
	z[0] = carry
	return z.trim()
}

// sub calculates |x - y|.
func (x digits) sub(y digits) digits {
	if x.cmp(y) < 0 {
		x, y = y, x
	}
	z := make(digits, len(x))
	borrow := 0
	for i := 1; i <= len(x); i++ {
		d := int(x[len(x)-i]) - borrow
		if i <= len(y) {
			d -= int(y[len(y)-i])
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		z[len(z)-i] = byte(d)
	}
	return z.trim()
}

// fsa (Fused Shift and Addition) calculates x * 10 + b.
func (x digits) fsa(b byte) digits {
	x = x.trim()
	if x.isZero() {
		return digits{b}
	}
	z := make(digits, len(x)+1)
	copy(z, x)
	z[len(x)] = b
	return z
}

// mul calculates x * y.
// Operands shorter than karatsubaThreshold are multiplied
// with mulNaive, longer ones with mulKaratsuba.
func (x digits) mul(y digits) digits {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) < karatsubaThreshold {
		return x.mulNaive(y)
	}
	return x.mulKaratsuba(y)
}

// mulNaive calculates x * y using grade-school multiplication.
func (x digits) mulNaive(y digits) digits {
	pos := make([]int, len(x)+len(y))
	for i := len(x) - 1; i >= 0; i-- {
		for j := len(y) - 1; j >= 0; j-- {
			p1, p2 := i+j, i+j+1
			sum := int(x[i])*int(y[j]) + pos[p2]
			pos[p1] += sum / 10
			pos[p2] = sum % 10
		}
	}
	z := make(digits, len(pos))
	for i, p := range pos {
		z[i] = byte(p)
	}
	return z.trim()
}

// mulKaratsuba calculates x * y by splitting both operands into
// high and low halves and combining three sub-products:
//
//	z0 = low1 * low2
//	z1 = (low1 + high1) * (low2 + high2) - z2 - z0
//	z2 = high1 * high2
//	x * y = z2 * 10^(2m) + z1 * 10^m + z0
//
// The sub-products are computed with mul.
func (x digits) mulKaratsuba(y digits) digits {
	if len(x) < len(y) {
		x, y = y, x
	}

	// Split
	m := len(x) / 2
	high1, low1 := x[:len(x)-m], x[len(x)-m:]
	high2, low2 := digitsZero, y
	if len(y) > m {
		high2, low2 = y[:len(y)-m], y[len(y)-m:]
	}

	// Sub-products
	z0 := low1.mul(low2)
	z2 := high1.mul(high2)
	z1 := low1.add(high1).mul(low2.add(high2))
	z1 = z1.sub(z2).sub(z0)

	// Recombination
	buf := make([]int, len(x)+len(y))
	place := func(z digits, shift int) {
		z = z.trim()
		for i := 1; i <= len(z); i++ {
			buf[len(buf)-shift-i] += int(z[len(z)-i])
		}
	}
	place(z0, 0)
	place(z1, m)
	place(z2, 2*m)

	// Carry
	carry := 0
	for i := len(buf) - 1; i >= 0; i-- {
		s := buf[i] + carry
		buf[i] = s % 10
		carry = s / 10
	}

	z := make(digits, len(buf))
	for i, b := range buf {
		z[i] = byte(b)
	}
	return z.trim()
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q using long division.
// Each quotient digit is the number of times y can be subtracted
// from the running remainder.
// If y is 0, the result is unpredictable.
func (x digits) quoRem(y digits) (q, r digits) {
	y = y.trim()
	q = make(digits, 0, len(x))
	r = digitsZero
	for _, d := range x {
		r = r.fsa(d)
		var n byte
		for r.cmp(y) >= 0 {
			r = r.sub(y)
			n++
		}
		q = append(q, n)
	}
	return q.trim(), r.trim()
}

// gcd calculates the greatest common divisor of x and y
// using the Euclidean algorithm.
func (x digits) gcd(y digits) digits {
	x, y = x.trim(), y.trim()
	for !y.isZero() {
		_, r := x.quoRem(y)
		x, y = y, r
	}
	return x
}

// uint64 converts x to uint64.
// ok is false if x cannot be represented as uint64.
func (x digits) uint64() (z uint64, ok bool) {
	x = x.trim()
	for _, d := range x {
		if z > (math.MaxUint64-uint64(d))/10 {
			return 0, false
		}
		z = z*10 + uint64(d)
	}
	return z, true
}

// float64 converts x to a floating-point approximation by summing
// digit * 10^place.
// ok is false if the sum is not finite.
func (x digits) float64() (f float64, ok bool) {
	x = x.trim()
	for i, d := range x {
		f += float64(d) * math.Pow(10, float64(len(x)-i-1))
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// appendText appends the decimal text of x to buf.
func (x digits) appendText(buf []byte) []byte {
	for _, d := range x.trim() {
		buf = append(buf, '0'+d)
	}
	return buf
}
