package expr

import (
	"fmt"
	"math"
)

// Op is a binary operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpPow Op = '^'
)

func parseOp(c byte) (Op, bool) {
	switch op := Op(c); op {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		return op, true
	}
	return 0, false
}

func (o Op) String() string {
	return string(o)
}

func (o Op) precedence() int {
	switch o {
	case OpAdd, OpSub:
		return 0
	case OpMul, OpDiv:
		return 1
	case OpPow:
		return 2
	}
	return -1
}

func (o Op) apply(a, b float64) (float64, error) {
	switch o {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, fmt.Errorf("%w: %g/0", ErrDivideByZero, a)
		}
		return a / b, nil
	case OpPow:
		if a == 0 && b <= 0 {
			return 0, fmt.Errorf("%w: %g^%g", ErrIllDefinedPower, a, b)
		}
		return math.Pow(a, b), nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownOperator, byte(o))
}

// reduce folds the interleaved vals/ops sequence. An operator is postponed
// while its right neighbour binds tighter; otherwise it is applied and the
// scan restarts from the left.
func reduce(vals []float64, ops []Op) (float64, error) {
	for len(ops) > 0 {
		i := 0
		for i < len(ops)-1 && ops[i].precedence() < ops[i+1].precedence() {
			i++
		}
		r, err := ops[i].apply(vals[i], vals[i+1])
		if err != nil {
			return 0, err
		}
		vals[i] = r
		vals = append(vals[:i+1], vals[i+2:]...)
		ops = append(ops[:i], ops[i+1:]...)
	}
	return vals[0], nil
}
