package expr

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/san-kum/numcalc/internal/calc"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"acot", 0, math.Pi / 2},
		{"acot", 1, math.Pi / 4},
		{"acot", -1, 3 * math.Pi / 4},
		{"asin", 1, math.Pi / 2},
		{"acos", -1, math.Pi},
		{"asech", 1, 0},
		{"acosh", 1, 0},
		{"signum", -0.0, 1},
		{"signum", math.Copysign(0, -1), -1},
		{"signum", -3, -1},
		{"fract", -2.5, -0.5},
		{"round", -2.5, -3},
		{"trunc", -2.7, -2},
		{"exp_m1", 0, 0},
		{"ln_1p", 0, 0},
		{"exp2", 3, 8},
		{"log2", 8, 3},
		{"log10", 1000, 3},
		{"cbrt", -27, -3},
		{"sech", 0, 1},
	}

	for _, tt := range tests {
		got, err := Apply(tt.name, tt.x)
		if err != nil {
			t.Errorf("%s(%v) failed: %v", tt.name, tt.x, err)
			continue
		}
		if math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("%s(%v) = %v, want %v", tt.name, tt.x, got, tt.expected)
		}
	}
}

func TestApplyDomain(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{"asin", 1.5},
		{"acos", -2},
		{"acosh", 0.5},
		{"atanh", 1},
		{"acoth", 0.5},
		{"asec", 0.5},
		{"acsc", -0.5},
		{"asech", 0},
		{"asech", 2},
		{"acsch", 0},
		{"ln", 0},
		{"ln_1p", -1},
		{"log10", -1},
		{"log2", 0},
		{"sqrt", -1},
		{"cot", 0},
		{"csc", 0},
		{"coth", 0},
		{"csch", 0},
	}

	for _, tt := range tests {
		_, err := Apply(tt.name, tt.x)
		if !errors.Is(err, calc.ErrDomain) {
			t.Errorf("%s(%v): expected domain error, got %v", tt.name, tt.x, err)
			continue
		}
		var de *calc.DomainError
		if errors.As(err, &de) && (de.Func != tt.name || de.Arg != tt.x) {
			t.Errorf("%s(%v): unexpected payload %+v", tt.name, tt.x, de)
		}
	}
}

func TestApplyUnknown(t *testing.T) {
	if _, err := Apply("gamma", 1); !errors.Is(err, ErrUnknownFunction) {
		t.Errorf("expected ErrUnknownFunction, got %v", err)
	}
}

func TestFunctions(t *testing.T) {
	names := Functions()

	if !slices.IsSorted(names) {
		t.Error("expected sorted names")
	}
	for _, want := range []string{"abs", "acot", "exp_m1", "ln_1p", "signum", "tanh"} {
		if !slices.Contains(names, want) {
			t.Errorf("expected %s in function library", want)
		}
	}
}

func TestFunctionAtPrefersCalls(t *testing.T) {
	tests := []struct {
		in   string
		name string
		ok   bool
	}{
		{"sinh(x)", "sinh", true},
		{"sin(x)", "sin", true},
		{"exp_m1(x)", "exp_m1", true},
		{"exp", "", false},
		{"xsin(x)", "", false},
		{"round(x)", "round", true},
	}

	for _, tt := range tests {
		name, ok := functionAt(tt.in)
		if name != tt.name || ok != tt.ok {
			t.Errorf("functionAt(%q) = %q, %v; want %q, %v", tt.in, name, ok, tt.name, tt.ok)
		}
	}
}
