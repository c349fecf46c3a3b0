package bignum

import "fmt"

// MustQuo is like [Int.Quo] but panics if computing error.
func (x Int) MustQuo(y Int) Int {
	z, err := x.Quo(y)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", y, err))
	}
	return z
}

// MustRem is like [Int.Rem] but panics if computing error.
func (x Int) MustRem(y Int) Int {
	z, err := x.Rem(y)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", y, err))
	}
	return z
}

// MustSqrt is like [Int.Sqrt] but panics if computing error.
func (x Int) MustSqrt() float64 {
	f, err := x.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return f
}

// MustIsqrt is like [Int.Isqrt] but panics if computing error.
func (x Int) MustIsqrt() Int {
	z, err := x.Isqrt()
	if err != nil {
		panic(fmt.Sprintf("MustIsqrt() failed: %v", err))
	}
	return z
}

// MustQuo is like [Rat.Quo] but panics if computing error.
func (r Rat) MustQuo(s Rat) Rat {
	q, err := r.Quo(s)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", s, err))
	}
	return q
}

// MustInv is like [Rat.Inv] but panics if computing error.
func (r Rat) MustInv() Rat {
	q, err := r.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv() failed: %v", err))
	}
	return q
}

// MustSqrt is like [Rat.Sqrt] but panics if computing error.
func (r Rat) MustSqrt() float64 {
	f, err := r.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt() failed: %v", err))
	}
	return f
}
