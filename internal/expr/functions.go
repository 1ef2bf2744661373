package expr

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/san-kum/numcalc/internal/calc"
)

type function struct {
	eval   func(float64) float64
	valid  func(float64) bool
	reason string
}

var (
	positive    = func(x float64) bool { return x > 0 }
	nonNegative = func(x float64) bool { return x >= 0 }
	nonZero     = func(x float64) bool { return x != 0 }
	unit        = func(x float64) bool { return math.Abs(x) <= 1 }
	outsideUnit = func(x float64) bool { return math.Abs(x) >= 1 }
)

const (
	reasonUnit        = "argument's absolute value may not exceed 1"
	reasonOutsideUnit = "argument's absolute value may not be smaller than 1"
	reasonPositive    = "argument must be positive"
	reasonNonZero     = "argument must be nonzero"
)

var functions = map[string]function{
	"abs": {eval: math.Abs},

	"sin": {eval: math.Sin},
	"cos": {eval: math.Cos},
	"tan": {eval: math.Tan},
	"cot": {
		eval:   func(x float64) float64 { return math.Cos(x) / math.Sin(x) },
		valid:  func(x float64) bool { return math.Sin(x) != 0 },
		reason: "sine of the argument is zero",
	},
	"sec": {
		eval:   func(x float64) float64 { return 1 / math.Cos(x) },
		valid:  func(x float64) bool { return math.Cos(x) != 0 },
		reason: "cosine of the argument is zero",
	},
	"csc": {
		eval:   func(x float64) float64 { return 1 / math.Sin(x) },
		valid:  func(x float64) bool { return math.Sin(x) != 0 },
		reason: "sine of the argument is zero",
	},

	"asin": {eval: math.Asin, valid: unit, reason: reasonUnit},
	"acos": {eval: math.Acos, valid: unit, reason: reasonUnit},
	"atan": {eval: math.Atan},
	"acot": {eval: acot},
	"asec": {
		eval:   func(x float64) float64 { return math.Acos(1 / x) },
		valid:  outsideUnit,
		reason: reasonOutsideUnit,
	},
	"acsc": {
		eval:   func(x float64) float64 { return math.Asin(1 / x) },
		valid:  outsideUnit,
		reason: reasonOutsideUnit,
	},

	"sinh": {eval: math.Sinh},
	"cosh": {eval: math.Cosh},
	"tanh": {eval: math.Tanh},
	"coth": {
		eval:   func(x float64) float64 { return 1 / math.Tanh(x) },
		valid:  nonZero,
		reason: reasonNonZero,
	},
	"sech": {eval: func(x float64) float64 { return 1 / math.Cosh(x) }},
	"csch": {
		eval:   func(x float64) float64 { return 1 / math.Sinh(x) },
		valid:  nonZero,
		reason: reasonNonZero,
	},

	"asinh": {eval: math.Asinh},
	"acosh": {
		eval:   math.Acosh,
		valid:  func(x float64) bool { return x >= 1 },
		reason: "argument cannot be smaller than 1",
	},
	"atanh": {
		eval:   math.Atanh,
		valid:  func(x float64) bool { return math.Abs(x) < 1 },
		reason: "argument's absolute value must be less than 1",
	},
	"acoth": {
		eval:   func(x float64) float64 { return math.Atanh(1 / x) },
		valid:  func(x float64) bool { return math.Abs(x) > 1 },
		reason: "argument's absolute value must exceed 1",
	},
	"asech": {
		eval:   func(x float64) float64 { return math.Acosh(1 / x) },
		valid:  func(x float64) bool { return x > 0 && x <= 1 },
		reason: "argument must be between 0 (exclusive) and 1 (inclusive)",
	},
	"acsch": {
		eval:   func(x float64) float64 { return math.Asinh(1 / x) },
		valid:  nonZero,
		reason: reasonNonZero,
	},

	"exp":    {eval: math.Exp},
	"exp2":   {eval: math.Exp2},
	"exp_m1": {eval: math.Expm1},
	"ln":     {eval: math.Log, valid: positive, reason: reasonPositive},
	"ln_1p": {
		eval:   math.Log1p,
		valid:  func(x float64) bool { return x > -1 },
		reason: "argument must exceed -1",
	},
	"log10": {eval: math.Log10, valid: positive, reason: reasonPositive},
	"log2":  {eval: math.Log2, valid: positive, reason: reasonPositive},
	"sqrt":  {eval: math.Sqrt, valid: nonNegative, reason: "argument may not be negative"},
	"cbrt":  {eval: math.Cbrt},

	"ceil":   {eval: math.Ceil},
	"floor":  {eval: math.Floor},
	"round":  {eval: math.Round},
	"trunc":  {eval: math.Trunc},
	"fract":  {eval: func(x float64) float64 { return x - math.Trunc(x) }},
	"signum": {eval: signum},
}

// byLength lists function names longest first.
var byLength = func() []string {
	names := Functions()
	slices.SortStableFunc(names, func(a, b string) int { return len(b) - len(a) })
	return names
}()

func acot(x float64) float64 {
	switch {
	case x == 0:
		return math.Pi / 2
	case x > 0:
		return math.Atan(1 / x)
	default:
		return math.Pi + math.Atan(1/x)
	}
}

func signum(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	if math.Signbit(x) {
		return -1
	}
	return 1
}

// Functions returns the names of the unary function library, sorted.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Apply evaluates the named unary function at x.
func Apply(name string, x float64) (float64, error) {
	fn, ok := functions[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownFunction, name)
	}
	if fn.valid != nil && !fn.valid(x) {
		return 0, &calc.DomainError{Func: name, Arg: x, Reason: fn.reason}
	}
	return fn.eval(x), nil
}

// functionAt reports the library function called at the start of s, that
// is a name immediately followed by an opening parenthesis.
func functionAt(s string) (string, bool) {
	for _, name := range byLength {
		if len(s) > len(name) && s[len(name)] == '(' && strings.HasPrefix(s, name) {
			return name, true
		}
	}
	return "", false
}
