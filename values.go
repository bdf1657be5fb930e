package anyvalue

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	defaultStringLength = 10

	dateOffsetDays  = 5000
	dateWindowDays  = 10000
	minutesInOneDay = 24 * 60
)

// String returns a random string of ten uppercase letters.
func (g *Generator) String() string {
	return g.StringOfLength(defaultStringLength)
}

/*
StringOfLength returns a random string of length uppercase letters A to Z.
It panics with ErrInvalidArgument if length is not positive.
*/
func (g *Generator) StringOfLength(length int) string {
	precondition(length > 0, ErrInvalidArgument, "string length %d must be positive", length)

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(byte('A' + g.intN(26)))
	}
	return sb.String()
}

/*
StringExcept returns a random string that differs from except. The result
is one character longer than except, so the two can never be equal.
*/
func (g *Generator) StringExcept(except string) string {
	return g.StringOfLength(utf8.RuneCountInString(except) + 1)
}

// Integer returns a random int. It can be negative, positive or zero.
func (g *Generator) Integer() int {
	return int(g.uint64())
}

// PositiveInteger returns a random int in [1, math.MaxInt].
func (g *Generator) PositiveInteger() int {
	return g.PositiveIntegerUpTo(math.MaxInt)
}

/*
PositiveIntegerUpTo returns a random int in [1, maximum]. Draws are taken
from [0, maximum] and zero is redrawn. It panics with ErrInvalidArgument if
maximum is not positive.
*/
func (g *Generator) PositiveIntegerUpTo(maximum int) int {
	precondition(maximum > 0, ErrInvalidArgument, "maximum %d must be positive", maximum)

	for {
		if n := g.uint64N(uint64(maximum) + 1); n != 0 {
			return int(n)
		}
	}
}

// Boolean returns true or false with equal probability.
func (g *Generator) Boolean() bool {
	return g.intN(2) == 1
}

/*
Date returns a random date with a zero time of day, between 4999 days
before and 5000 days after today. Today is the clock's calendar date in the
clock's location; the result is that wall date moved by whole days and
located in UTC, where every day starts at midnight.
*/
func (g *Generator) Date() time.Time {
	y, m, d := g.now().Date()
	days := -dateOffsetDays + g.PositiveIntegerUpTo(dateWindowDays)
	return time.Date(y, m, d+days, 0, 0, 0, 0, time.UTC)
}

// DateTime returns Date advanced by between one minute and one day.
func (g *Generator) DateTime() time.Time {
	return g.Date().Add(time.Duration(g.PositiveIntegerUpTo(minutesInOneDay)) * time.Minute)
}

// String returns a random string of ten uppercase letters.
func String() string { return Default().String() }

// StringOfLength returns a random string of length uppercase letters.
func StringOfLength(length int) string { return Default().StringOfLength(length) }

// StringExcept returns a random string that differs from except.
func StringExcept(except string) string { return Default().StringExcept(except) }

// Integer returns a random int.
func Integer() int { return Default().Integer() }

// PositiveInteger returns a random int in [1, math.MaxInt].
func PositiveInteger() int { return Default().PositiveInteger() }

// PositiveIntegerUpTo returns a random int in [1, maximum].
func PositiveIntegerUpTo(maximum int) int { return Default().PositiveIntegerUpTo(maximum) }

// Boolean returns a random bool.
func Boolean() bool { return Default().Boolean() }

// Date returns a random date without a time of day.
func Date() time.Time { return Default().Date() }

// DateTime returns a random date and time.
func DateTime() time.Time { return Default().DateTime() }
