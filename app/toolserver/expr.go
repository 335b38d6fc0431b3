package toolserver

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errSyntax = errors.New("invalid syntax")

// translate parses expr with Python's arithmetic grammar and returns an
// equivalent JavaScript program. Floor division, modulo and division call
// the helpers installed by evaluate, so they follow Python semantics.
//
//	expr   := term (("+" | "-") term)*
//	term   := factor (("*" | "/" | "//" | "%") factor)*
//	factor := ("+" | "-") factor | power
//	power  := atom ["**" factor]
//	atom   := number | "(" expr ")"
func translate(expr string) (string, error) {
	p := &exprParser{src: expr}
	out, err := p.expr()
	if err != nil {
		return "", err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return "", fmt.Errorf("%w: unexpected %q at position %d", errSyntax, p.src[p.pos], p.pos)
	}
	return out, nil
}

type exprParser struct {
	src string
	pos int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

// accept consumes op when it is next, but never the first half of a longer
// operator ("*" does not match "**").
func (p *exprParser) accept(op string) bool {
	p.skipSpace()
	if !strings.HasPrefix(p.src[p.pos:], op) {
		return false
	}
	rest := p.src[p.pos+len(op):]
	if (op == "*" || op == "/") && strings.HasPrefix(rest, op) {
		return false
	}
	p.pos += len(op)
	return true
}

func (p *exprParser) expr() (string, error) {
	left, err := p.term()
	if err != nil {
		return "", err
	}
	for {
		var op string
		switch {
		case p.accept("+"):
			op = "+"
		case p.accept("-"):
			op = "-"
		default:
			return left, nil
		}
		right, err := p.term()
		if err != nil {
			return "", err
		}
		left = "(" + left + op + right + ")"
	}
}

func (p *exprParser) term() (string, error) {
	left, err := p.factor()
	if err != nil {
		return "", err
	}
	for {
		var fn string
		switch {
		case p.accept("//"):
			fn = "__floordiv"
		case p.accept("*"):
			fn = "*"
		case p.accept("/"):
			fn = "__div"
		case p.accept("%"):
			fn = "__mod"
		default:
			return left, nil
		}
		right, err := p.factor()
		if err != nil {
			return "", err
		}
		if fn == "*" {
			left = "(" + left + "*" + right + ")"
		} else {
			left = fn + "(" + left + "," + right + ")"
		}
	}
}

func (p *exprParser) factor() (string, error) {
	for _, op := range []string{"+", "-"} {
		if p.accept(op) {
			operand, err := p.factor()
			if err != nil {
				return "", err
			}
			return "(" + op + operand + ")", nil
		}
	}
	return p.power()
}

func (p *exprParser) power() (string, error) {
	base, err := p.atom()
	if err != nil {
		return "", err
	}
	if !p.accept("**") {
		return base, nil
	}
	exp, err := p.factor()
	if err != nil {
		return "", err
	}
	return "Math.pow(" + base + "," + exp + ")", nil
}

func (p *exprParser) atom() (string, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("%w: unexpected end of expression", errSyntax)
	}
	if p.accept("(") {
		inner, err := p.expr()
		if err != nil {
			return "", err
		}
		if !p.accept(")") {
			return "", fmt.Errorf("%w: missing closing parenthesis", errSyntax)
		}
		return "(" + inner + ")", nil
	}
	return p.number()
}

func (p *exprParser) number() (string, error) {
	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	intPart := p.src[start:p.pos]

	isFloat := false
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		isFloat = true
		p.pos++
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}

	lit := p.src[start:p.pos]
	if lit == "" || lit == "." {
		if p.pos < len(p.src) {
			return "", fmt.Errorf("%w: unexpected %q at position %d", errSyntax, p.src[p.pos], p.pos)
		}
		return "", fmt.Errorf("%w: unexpected end of expression", errSyntax)
	}
	if !isFloat && len(intPart) > 1 && intPart[0] == '0' && strings.Trim(intPart, "0") != "" {
		return "", fmt.Errorf("%w: leading zeros in decimal integer literals are not permitted", errSyntax)
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return "", fmt.Errorf("%w: bad number %q", errSyntax, lit)
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func pyDiv(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func pyFloorDiv(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return math.Floor(a / b), nil
}

// pyMod takes the sign of the divisor, as Python's % does.
func pyMod(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m, nil
}
