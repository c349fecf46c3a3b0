package bignum

// GCD returns the greatest common divisor of |a| and |b|.
// The result is never negative, and GCD(0, 0) is 0.
func GCD(a, b Int) Int {
	return newInt(false, a.magnitude().gcd(b.magnitude()))
}

// gcd64 returns the greatest common divisor of a and b.
// It lets [NewRat] reduce native integers before they are
// converted to digits.
func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
