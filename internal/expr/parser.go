package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// scope holds the per-call variable bindings, indexed by letter.
type scope struct {
	vals  [26]float64
	bound [26]bool
}

func (s *scope) set(idx int, v float64) {
	s.vals[idx] = v
	s.bound[idx] = true
}

func (s *scope) lookup(c byte) (float64, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	i := c - 'a'
	return s.vals[i], s.bound[i]
}

// cursor walks src[pos:end] of the parser's formula.
type cursor struct {
	pos, end int
}

func (c *cursor) done() bool { return c.pos >= c.end }

type parser struct {
	src  string
	vars *scope
}

func (p *parser) syntax(pos int, err error) error {
	return &SyntaxError{Formula: p.src, Pos: pos, Err: err}
}

// expression evaluates src[pos:end].
func (p *parser) expression(pos, end int) (float64, error) {
	c := &cursor{pos: pos, end: end}
	if !c.done() && p.src[c.pos] == '+' {
		c.pos++
	}

	v, err := p.value(c)
	if err != nil {
		return 0, err
	}
	vals := []float64{v}
	var ops []Op

	for !c.done() {
		op, ok := parseOp(p.src[c.pos])
		if ok {
			c.pos++
		} else {
			op = OpMul
		}
		v, err := p.value(c)
		if err != nil {
			return 0, err
		}
		ops = append(ops, op)
		vals = append(vals, v)
	}

	return reduce(vals, ops)
}

func (p *parser) value(c *cursor) (float64, error) {
	if c.done() {
		return 0, p.syntax(c.pos, ErrTruncated)
	}

	ch := p.src[c.pos]
	switch {
	case ch == '(':
		closing, err := p.matchParen(c.pos+1, c.end)
		if err != nil {
			return 0, err
		}
		v, err := p.expression(c.pos+1, closing)
		if err != nil {
			return 0, err
		}
		c.pos = closing + 1
		return v, nil
	case isLetter(ch):
		return p.identifier(c)
	default:
		return p.number(c)
	}
}

// matchParen returns the index of the parenthesis closing the one just
// before pos.
func (p *parser) matchParen(pos, end int) (int, error) {
	depth := 1
	for i := pos; i < end; i++ {
		switch p.src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, p.syntax(pos-1, fmt.Errorf("%w for %q", ErrUnclosedParen, p.src[pos:end]))
}

func (p *parser) identifier(c *cursor) (float64, error) {
	rest := p.src[c.pos:c.end]

	if name, ok := functionAt(rest); ok {
		open := c.pos + len(name)
		closing, err := p.matchParen(open+1, c.end)
		if err != nil {
			return 0, err
		}
		arg, err := p.expression(open+1, closing)
		if err != nil {
			return 0, err
		}
		c.pos = closing + 1
		return Apply(name, arg)
	}

	if strings.HasPrefix(rest, "pi") {
		c.pos += 2
		return math.Pi, nil
	}

	if v, ok := p.vars.lookup(rest[0]); ok {
		c.pos++
		return v, nil
	}

	run := identRun(rest)
	if len(run) < len(rest) && rest[len(run)] == '(' {
		return 0, p.syntax(c.pos, fmt.Errorf("%w %q", ErrUnknownFunction, run))
	}
	return 0, p.syntax(c.pos, fmt.Errorf("%w: %q", ErrMissingArgument, run))
}

// number consumes the longest prefix that keeps parsing as a float. A minus
// sign that starts no literal stands for -1 times whatever follows it.
func (p *parser) number(c *cursor) (float64, error) {
	rest := p.src[c.pos:c.end]

	var v float64
	n := 0
	for i := 1; i <= len(rest); i++ {
		s := rest[:i]
		if s == "." || s == "-" || s == "-." {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0, p.syntax(c.pos, fmt.Errorf("%w: %q is out of range", ErrBadNumber, s))
		}
		if err != nil {
			break
		}
		v, n = f, i
	}

	if n == 0 {
		if rest[0] == '-' && len(rest) > 1 && rest[1] != '.' {
			c.pos++
			return -1, nil
		}
		return 0, p.syntax(c.pos, fmt.Errorf("%w from the start of %q", ErrBadNumber, rest))
	}

	c.pos += n
	return v, nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func identRun(s string) string {
	i := 0
	for i < len(s) && (isLetter(s[i]) || s[i] == '_' || (i > 0 && s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	return s[:i]
}
