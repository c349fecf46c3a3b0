package bignum

// The methods below rebind the variable they are called on.
// The value it held before is never modified, so copies of it
// taken earlier keep their value.

// AddAssign sets x to x + y.
func (x *Int) AddAssign(y Int) {
	*x = x.Add(y)
}

// SubAssign sets x to x - y.
func (x *Int) SubAssign(y Int) {
	*x = x.Sub(y)
}

// MulAssign sets x to x * y.
func (x *Int) MulAssign(y Int) {
	*x = x.Mul(y)
}

// QuoAssign sets x to x / y, see [Int.Quo].
// If y is 0, x is left unchanged and [ErrDivisionByZero] is returned.
func (x *Int) QuoAssign(y Int) error {
	z, err := x.Quo(y)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// RemAssign sets x to x % y, see [Int.Rem].
// If y is 0, x is left unchanged and [ErrDivisionByZero] is returned.
func (x *Int) RemAssign(y Int) error {
	z, err := x.Rem(y)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// AddAssign sets r to r + s.
func (r *Rat) AddAssign(s Rat) {
	*r = r.Add(s)
}

// SubAssign sets r to r - s.
func (r *Rat) SubAssign(s Rat) {
	*r = r.Sub(s)
}

// MulAssign sets r to r * s.
func (r *Rat) MulAssign(s Rat) {
	*r = r.Mul(s)
}

// QuoAssign sets r to r / s.
// If s is 0, r is left unchanged and [ErrDivisionByZero] is returned.
func (r *Rat) QuoAssign(s Rat) error {
	q, err := r.Quo(s)
	if err != nil {
		return err
	}
	*r = q
	return nil
}
