package calc

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind string
	}{
		{"nil", nil, ""},
		{"parse", fmt.Errorf("%w: unclosed", ErrParse), "parse"},
		{"domain", &DomainError{Func: "sqrt", Arg: -1, Reason: "negative"}, "domain"},
		{"arithmetic", fmt.Errorf("wrapped: %w", fmt.Errorf("%w: 1/0", ErrArithmetic)), "arithmetic"},
		{"convergence", ErrConvergence, "convergence"},
		{"input", fmt.Errorf("%w: steps", ErrInput), "input"},
		{"other", errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.kind {
				t.Errorf("KindOf() = %q, want %q", got, tt.kind)
			}
		})
	}
}

func TestDomainError(t *testing.T) {
	err := &DomainError{Func: "ln", Arg: -2, Reason: "argument must be positive"}

	if !errors.Is(err, ErrDomain) {
		t.Error("expected DomainError to wrap ErrDomain")
	}

	var de *DomainError
	if !errors.As(fmt.Errorf("eval: %w", err), &de) {
		t.Fatal("expected errors.As to find DomainError")
	}
	if de.Func != "ln" || de.Arg != -2 {
		t.Errorf("unexpected payload: %+v", de)
	}

	want := "ln(-2): argument must be positive"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
