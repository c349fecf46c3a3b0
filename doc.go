/*
Package bignum implements immutable arbitrary-precision integers and
exact rational numbers built on top of them.
Values of any size are supported, limited only by available memory,
and every operation except the float64 conversions is exact.

# Representation

[Int] is a struct with two fields:

  - Sign: a boolean indicating whether the integer is negative.
  - Magnitude: the absolute value of the integer stored as a sequence of
    decimal digits, most significant digit first.
    For example, the magnitude of -1234 is the sequence 1, 2, 3, 4.

Leading zeros are never stored and [negative zeros] are not supported,
so every integer has exactly one representation.

[Rat] is a pair of integers, a numerator and a denominator, kept in lowest
terms with a positive denominator.
For example, 6/-4 is stored as -3/2, and 0/5 is stored as 0/1.
Since the representation is canonical, two rationals are equal if and only
if their numerators and denominators are equal.

The zero values of both types are valid and equal to 0.

# Conversions

The package provides methods for converting integers and rationals:

  - from/to string:
    [Parse], [Int.String], [Int.Format],
    [ParseRat], [ParseRatString], [Rat.String], [Rat.Format].
  - from/to text streams:
    [Int.Scan], [Rat.Scan] (see [fmt.Fscan]).
  - from/to int64:
    [NewInt], [NewRat], [Int.Int64].
  - to float64:
    [Int.Float64], [Rat.Float64].

# Operations

Integers are added and subtracted digit by digit in sign-magnitude form.
Multiplication uses grade-school multiplication for short operands and
switches to the [Karatsuba algorithm] once both operands are at least
32 digits long.
Division is schoolbook long division that produces one quotient digit
at a time, so [Int.Quo] truncates towards zero and [Int.Rem] has the
sign of the dividend.

Rational results are reduced with [GCD] after every operation.

[Eval] and [EvalRat] evaluate infix expressions such as "(1 + 2) * -3".

# Errors

All arithmetic methods are panic-free, except for the Must variants.
Errors are returned in the following cases:

  - Invalid Format.
    [Parse], [ParseRat] and the Scan methods return [ErrInvalidFormat]
    for empty strings, lone signs and non-digit characters.

  - Division by Zero.
    Unlike the standard library, [Int.Quo], [Int.Rem], [Rat.Quo] and
    [Rat.Inv] do not panic when dividing by 0.
    Instead, they return [ErrDivisionByZero].

  - Zero Denominator.
    [NewRat], [NewRatFromInt] and [ParseRat] return [ErrZeroDenominator].

  - Negative Square Root.
    The Sqrt and Isqrt methods return [ErrNegativeSqrt].

  - Overflow.
    Conversions to float64 return [ErrNumericOverflow] if the value is
    outside the range of float64.

[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
[Karatsuba algorithm]: https://en.wikipedia.org/wiki/Karatsuba_algorithm
*/
package bignum
