package expr

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/numcalc/internal/calc"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		formula  string
		bindings Bindings
		expected float64
	}{
		{"precedence", "2+3*4", nil, 14},
		{"parentheses", "(2+3)*4", nil, 20},
		{"implied multiplication", "2(3)", nil, 6},
		{"implied between groups", "(1+2)(3+4)", nil, 21},
		{"left to right subtraction", "3-2-1", nil, 0},
		{"left to right division", "8/2/2", nil, 2},
		{"power left to right", "2^3^2", nil, 64},
		{"power binds tightest", "1+2*3^2", nil, 19},
		{"mixed precedence", "1+2*3-4*5^2", nil, -93},
		{"star star alias", "2**3", nil, 8},
		{"d division", "10d4", nil, 2.5},
		{"div division", "10div4", nil, 2.5},
		{"upper case division", "10 DIV 4", nil, 2.5},
		{"whitespace", " 1 +  2 ", nil, 3},
		{"leading plus", "+5", nil, 5},
		{"pi", "pi", nil, math.Pi},
		{"implied pi", "2pi", nil, 2 * math.Pi},
		{"negative literal", "-2^2", nil, 4},
		{"unary minus before group", "-(1+1)^2", nil, -4},
		{"negative operand", "2*-3", nil, -6},
		{"double minus", "3--2", nil, 5},
		{"negative exponent", "2^-1", nil, 0.5},
		{"trailing dot", "5.*2", nil, 10},
		{"function", "sqrt(16)", nil, 4},
		{"implied function", "2sqrt(4)", nil, 4},
		{"nested function", "abs(-3+floor(0.5))", nil, 3},
		{"round keeps its d", "round(2.5)", nil, 3},
		{"variable", "2x", Bindings{"x": 3}, 6},
		{"upper case variable", "2X", Bindings{"x": 3}, 6},
		{"upper case binding", "2x", Bindings{"X": 3}, 6},
		{"adjacent variables", "xy", Bindings{"x": 2, "y": 3}, 6},
		{"x inside exp", "exp(x)", Bindings{"x": 1}, math.E},
		{"variable then function", "xexp(x)", Bindings{"x": 1}, math.E},
		{"t inside tan", "tan(t)", Bindings{"t": 0.5}, math.Tan(0.5)},
		{"a inside asin", "asin(a)", Bindings{"a": 0.5}, math.Asin(0.5)},
		{"unary minus function", "-sin(x)", Bindings{"x": math.Pi / 2}, -1},
		{"documented example", "2x+3/(x^4+5)", Bindings{"x": 1}, 2.5},
		{"zero power", "0^2", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.formula, tt.bindings)
			if err != nil {
				t.Fatalf("Evaluate(%q) failed: %v", tt.formula, err)
			}
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.formula, got, tt.expected)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name     string
		formula  string
		bindings Bindings
		target   error
		kind     error
	}{
		{"divide by zero", "1d0", nil, ErrDivideByZero, calc.ErrArithmetic},
		{"slash divide by zero", "1/(2-2)", nil, ErrDivideByZero, calc.ErrArithmetic},
		{"zero to zero", "0^0", nil, ErrIllDefinedPower, calc.ErrArithmetic},
		{"zero to negative", "0^-1", nil, ErrIllDefinedPower, calc.ErrArithmetic},
		{"unclosed group", "(1+2", nil, ErrUnclosedParen, calc.ErrParse},
		{"unclosed argument", "sin(1", nil, ErrUnclosedParen, calc.ErrParse},
		{"truncated", "2+", nil, ErrTruncated, calc.ErrParse},
		{"empty", "", nil, ErrTruncated, calc.ErrParse},
		{"empty group", "()", nil, ErrTruncated, calc.ErrParse},
		{"unknown function", "foo(1)", nil, ErrUnknownFunction, calc.ErrParse},
		{"function without argument", "sin", nil, ErrMissingArgument, calc.ErrParse},
		{"unbound variable", "2y", nil, ErrMissingArgument, calc.ErrParse},
		{"plus operand", "2*+3", nil, ErrBadNumber, calc.ErrParse},
		{"stray paren", ")", nil, ErrBadNumber, calc.ErrParse},
		{"lone minus", "3*-", nil, ErrBadNumber, calc.ErrParse},
		{"domain", "sqrt(-1)", nil, calc.ErrDomain, calc.ErrDomain},
		{"domain in argument", "2+ln(x)", Bindings{"x": 0}, calc.ErrDomain, calc.ErrDomain},
		{"long binding", "x", Bindings{"xy": 1}, ErrInvalidBinding, calc.ErrInput},
		{"reserved binding", "x", Bindings{"d": 1}, ErrInvalidBinding, calc.ErrInput},
		{"binding repeated in upper case", "x", Bindings{"X": 1, "x": 2}, ErrInvalidBinding, calc.ErrInput},
		{"oversized literal", strings.Repeat("1", 400), nil, ErrBadNumber, calc.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.formula, tt.bindings)
			if err == nil {
				t.Fatalf("Evaluate(%q) succeeded, expected %v", tt.formula, tt.target)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("expected kind %v, got %v", tt.kind, err)
			}
		})
	}
}

func TestSyntaxErrorOffset(t *testing.T) {
	_, err := Evaluate("2+foo(1)", nil)

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if se.Pos != 2 {
		t.Errorf("expected offset 2, got %d", se.Pos)
	}
	if se.Formula != "2+foo(1)" {
		t.Errorf("expected normalized formula, got %q", se.Formula)
	}
}

func TestDomainErrorPayload(t *testing.T) {
	_, err := Evaluate("acos(x)", Bindings{"x": 2})

	var de *calc.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	if de.Func != "acos" || de.Arg != 2 {
		t.Errorf("unexpected payload: %+v", de)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	formulas := []string{"2x+3/(x^4+5)", "sin(x)+x/2", "exp(-x^2)cos(3x)"}

	for _, f := range formulas {
		a, err := Evaluate(f, Bindings{"x": 0.7})
		if err != nil {
			t.Fatalf("Evaluate(%q) failed: %v", f, err)
		}
		b, _ := Evaluate(f, Bindings{"x": 0.7})
		if math.Float64bits(a) != math.Float64bits(b) {
			t.Errorf("Evaluate(%q) not deterministic: %v vs %v", f, a, b)
		}
	}
}

func TestBind(t *testing.T) {
	e := New("2x - t - 2")

	f, err := e.Bind("x", "t")
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	got, err := f(1, 0.5)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if got != -0.5 {
		t.Errorf("expected -0.5, got %v", got)
	}

	if _, err := f(1); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("expected ErrInvalidBinding for missing value, got %v", err)
	}

	if _, err := e.Bind("div"); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("expected ErrInvalidBinding, got %v", err)
	}
}

func TestFunc(t *testing.T) {
	f, err := New("x^2").Func("x")
	if err != nil {
		t.Fatalf("func failed: %v", err)
	}

	for _, x := range []float64{-2, 0, 3} {
		got, err := f(x)
		if err != nil {
			t.Fatalf("f(%v) failed: %v", x, err)
		}
		if got != x*x {
			t.Errorf("f(%v) = %v, want %v", x, got, x*x)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	f, _ := New("2x+3/(x^4+5)").Func("x")
	for i := 0; i < b.N; i++ {
		f(1.5)
	}
}
