// Package matchexpr implements the expression language monitors use to
// filter decoded transaction/event/function parameter bags: an infix,
// string-valued grammar shared by both the EVM and Stellar filters.
//
//	expr      := term (' OR ' term)*
//	term      := atom (' AND ' atom)*
//	atom      := '(' expr ')' | condition
//	condition := IDENT OP VALUE
//
// A malformed condition, an unknown parameter name, or an operand that
// fails to parse for its kind never returns an error: it evaluates to
// false and logs a warning, so one bad condition in a monitor degrades
// that condition rather than the whole tick.
package matchexpr

import (
	"fmt"
	"strings"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/goware/logger"
)

// Bag is the set of named, typed parameters a condition's identifiers
// resolve against.
type Bag map[string]chainmodel.Param

// Eval parses and evaluates expr against bag, using log to report warnings
// for unknown parameters/operators/unparseable operands. A nil or empty
// expr always evaluates to true (the "no expression" / "match trivially"
// case used when a condition list has no optional expression).
func Eval(expr string, bag Bag, log *logger.Logger) bool {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return true
	}
	p := &parser{tokens: tokenize(expr), bag: bag, log: log}
	return p.parseExpr()
}

type parser struct {
	tokens []string
	pos    int
	bag    Bag
	log    *logger.Logger
}

func (p *parser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

// parseExpr := term (OR term)*. Every term is parsed and evaluated, even
// after one has come out true; the result is true if any term is.
func (p *parser) parseExpr() bool {
	result := p.parseTerm()
	for strings.EqualFold(p.peek(), "OR") {
		p.next()
		next := p.parseTerm()
		result = result || next
	}
	return result
}

// parseTerm := atom (AND atom)*. Every atom is parsed and evaluated, even
// after one has come out false; the result is true only if all are.
func (p *parser) parseTerm() bool {
	result := p.parseAtom()
	for strings.EqualFold(p.peek(), "AND") {
		p.next()
		next := p.parseAtom()
		result = result && next
	}
	return result
}

func (p *parser) parseAtom() bool {
	if p.peek() == "(" {
		p.next()
		result := p.parseExpr()
		if p.peek() == ")" {
			p.next()
		}
		return result
	}
	return p.parseCondition()
}

// parseCondition consumes exactly IDENT OP VALUE. Running out of tokens or
// failing to recognise the operator both count as a malformed condition.
func (p *parser) parseCondition() bool {
	ident := p.next()
	op := p.next()
	value := p.next()

	if ident == "" || op == "" || value == "" {
		p.warn("malformed condition near token %d", p.pos)
		return false
	}

	param, ok := resolveIdent(p.bag, ident)
	if !ok {
		p.warn("unknown parameter %q", ident)
		return false
	}

	cmp, ok := comparatorFor(param.Kind)
	if !ok {
		p.warn("no comparator for parameter kind %q", param.Kind)
		return false
	}

	matched, ok := cmp(param, op, value)
	if !ok {
		p.warn("operator %q not supported for %q (%s)", op, ident, param.Kind)
		return false
	}
	return matched
}

func (p *parser) warn(format string, args ...any) {
	if p.log == nil {
		return
	}
	p.log.Warn(fmt.Sprintf(format, args...))
}
