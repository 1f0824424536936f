package logic

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"
	"unicode"
)

type parser struct {
	s     scanner.Scanner
	eof   bool   // Have we reached eof yet?
	token string // Last token read, or what remains of it for identifiers
	err   error  // First error reported by the scanner
}

// Parse parses the formula from the given input Reader.
// It returns the corresponding Formula.
// Formulas are written in the usual K-map notation, using the following operators
// (from lowest to highest priority):
//
// - for an equivalence, the "=" operator,
// - for an implication, the "->" operator,
// - for a disjunction ("or"), the "+" or "|" operator,
// - for a conjunction ("and"), the "&", "*" or "." operator, or simply juxtaposition,
// - for a negation, the "'" (or "`") postfix operator, or the "~", "!" or "^" prefix operators.
//
// Each letter is a variable on its own, so that "AB'" means "A and not B".
// Letters are case-insensitive: variables are always upper-case.
// "0" and "1" denote the constants false and true.
// Parentheses can be used to group subformulas.
func Parse(r io.Reader) (Formula, error) {
	var p parser
	p.s.Init(r)
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts
	p.s.IsIdentRune = func(ch rune, i int) bool { return unicode.IsLetter(ch) }
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%w: %s at %s", ErrSyntax, msg, s.Pos())
		}
	}
	p.scan()
	f, err := p.parseEquiv()
	if err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	if !p.eof {
		return nil, p.errorf("unexpected token %q", p.token)
	}
	return f, nil
}

// ParseString parses the formula held by expr.
func ParseString(expr string) (Formula, error) {
	return Parse(strings.NewReader(expr))
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s at %s", ErrSyntax, fmt.Sprintf(format, args...), p.s.Pos())
}

func isOperator(token string) bool {
	switch token {
	case "=", "-", "+", "|", "&", "*", ".", "'", "`":
		return true
	}
	return false
}

func isNegation(token string) bool {
	return token == "~" || token == "!" || token == "^"
}

// startsFactor is true if token can start an operand of a conjunction.
func (p *parser) startsFactor() bool {
	if p.eof {
		return false
	}
	if p.token == "(" || isNegation(p.token) || p.token == "0" || p.token == "1" {
		return true
	}
	return isIdent(p.token)
}

func isIdent(token string) bool {
	for _, r := range token {
		return unicode.IsLetter(r)
	}
	return false
}

func (p *parser) scan() {
	if p.eof {
		return
	}
	p.eof = (p.s.Scan() == scanner.EOF)
	p.token = p.s.TokenText()
}

func (p *parser) parseEquiv() (f Formula, err error) {
	if p.eof {
		return nil, p.errorf("expected expression, found EOF")
	}
	f, err = p.parseImplies()
	if err != nil {
		return nil, err
	}
	if !p.eof && p.token == "=" {
		p.scan()
		if p.eof {
			return nil, p.errorf("unexpected EOF")
		}
		f2, err := p.parseEquiv()
		if err != nil {
			return nil, err
		}
		return Eq(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseImplies() (f Formula, err error) {
	f, err = p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.eof && p.token == "-" {
		p.scan()
		if p.eof {
			return nil, p.errorf("unexpected EOF")
		}
		if p.token != ">" {
			return nil, p.errorf("invalid token %q", "-"+p.token)
		}
		p.scan()
		if p.eof {
			return nil, p.errorf("unexpected EOF")
		}
		f2, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Implies(f, f2), nil
	}
	return f, nil
}

func (p *parser) parseOr() (f Formula, err error) {
	f, err = p.parseAnd()
	if err != nil {
		return nil, err
	}
	subs := []Formula{f}
	for !p.eof && (p.token == "+" || p.token == "|") {
		p.scan()
		if p.eof {
			return nil, p.errorf("unexpected EOF")
		}
		f2, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		subs = append(subs, f2)
	}
	if len(subs) == 1 {
		return f, nil
	}
	return Or(subs...), nil
}

func (p *parser) parseAnd() (f Formula, err error) {
	f, err = p.parseNot()
	if err != nil {
		return nil, err
	}
	subs := []Formula{f}
	for !p.eof {
		if p.token == "&" || p.token == "*" || p.token == "." {
			p.scan()
			if p.eof {
				return nil, p.errorf("unexpected EOF")
			}
		} else if !p.startsFactor() {
			break
		}
		f2, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		subs = append(subs, f2)
	}
	if len(subs) == 1 {
		return f, nil
	}
	return And(subs...), nil
}

func (p *parser) parseNot() (f Formula, err error) {
	if isNegation(p.token) {
		p.scan()
		if p.eof {
			return nil, p.errorf("unexpected EOF")
		}
		f, err = p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	}
	f, err = p.parseBasic()
	if err != nil {
		return nil, err
	}
	for !p.eof && (p.token == "'" || p.token == "`") {
		f = Not(f)
		p.scan()
	}
	return f, nil
}

func (p *parser) parseBasic() (f Formula, err error) {
	if isOperator(p.token) || p.token == ")" {
		return nil, p.errorf("unexpected token %q", p.token)
	}
	switch {
	case p.token == "(":
		p.scan()
		f, err = p.parseEquiv()
		if err != nil {
			return nil, err
		}
		if p.eof {
			return nil, p.errorf("expected closing parenthesis, found EOF")
		}
		if p.token != ")" {
			return nil, p.errorf("expected closing parenthesis, found %q", p.token)
		}
		p.scan()
		return f, nil
	case p.token == "0":
		p.scan()
		return False, nil
	case p.token == "1":
		p.scan()
		return True, nil
	case isIdent(p.token):
		// Each letter is a variable: consume the first one and keep the rest as the current token.
		r := []rune(p.token)
		name := strings.ToUpper(string(r[0]))
		if len(r) > 1 {
			p.token = string(r[1:])
		} else {
			p.scan()
		}
		return Var(name), nil
	}
	return nil, p.errorf("unexpected token %q", p.token)
}
