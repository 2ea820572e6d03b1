/*
Package ratmath implements transcendental functions over exact rational numbers.
It extends the [big.Rat] type with square root, natural exponential, and natural
logarithm computed to a caller-specified decimal accuracy rather than a fixed
machine precision.

# Features

  - Square root using the Babylonian (Newton-Raphson) method
  - Natural exponential using a nested evaluation of the truncated Taylor series
  - Natural logarithm using Halley's method on e^g = x
  - Exact, rational stopping criterion: iteration stops when two successive
    approximations differ by at most 10^-accuracy
  - Pluggable initial guesses via the [Seed] type
  - Conversion of results to [decimal.Decimal] values
  - Pure functions, safe for concurrent use by multiple goroutines

# Representation

Arguments and results are [big.Rat] values.
Arguments are never modified, and every result is a newly allocated rational
in canonical reduced form, so results may be freely modified by the caller.

# Accuracy

For [SqrtAcc] and [LogAcc] the accuracy is the number of digits after the
decimal point within which two successive iterates must agree.
A [Tolerance] holds the corresponding value 1 / 10^accuracy.

For [ExpAcc] the accuracy is the number of terms of the series.
It does not translate directly into a number of correct digits, and the size
of the result grows quickly as it increases.

Neither iterative function imposes an iteration limit.
Square roots of arguments far outside the float64 range converge slowly with
the default seed; use [SqrtSeeded] with [ScaledSqrtSeed] for such values.
[Log] evaluates e^g with [DefaultExpAccuracy] terms, which limits it to
arguments whose logarithm is of moderate size (roughly |ln x| < 25 for
30 digits).

# Errors

Functions return [ErrInvalidDomain] when the argument lies outside the domain,
such as the square root of a negative number or the logarithm of zero,
and an [*ArgumentError] matching [ErrInvalidArgument] when the accuracy is not
positive.
[Exp] and [ExpAcc] never fail.
*/
package ratmath
