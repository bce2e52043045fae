/*
File    : mhando/parser/parser_precedence.go
*/
package parser

import (
	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/lexer"
)

// parseExpression implements precedence-climbing binary parsing per
// spec.md §4.2.1: expression := unary (binop unary)*. minPrec is the
// minimum precedence the caller is willing to accept for the next
// operator; ties bind left, and a strictly higher right-hand
// precedence recurses with prec+1.
func (p *Parser) parseExpression(minPrec int) (ast.Expr, bool) {
	lhs, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	return p.parseBinOpRHS(minPrec, lhs)
}

func (p *Parser) parseBinOpRHS(minPrec int, lhs ast.Expr) (ast.Expr, bool) {
	for {
		if p.curTok.Kind != lexer.Raw {
			return lhs, true
		}
		op := p.curTok.Ch
		prec := p.Tables.Precedence(op)
		if prec < minPrec {
			return lhs, true
		}
		p.advance()

		rhs, ok := p.parseUnary()
		if !ok {
			return nil, false
		}

		if p.curTok.Kind == lexer.Raw {
			nextPrec := p.Tables.Precedence(p.curTok.Ch)
			if prec < nextPrec {
				rhs, ok = p.parseBinOpRHS(prec+1, rhs)
				if !ok {
					return nil, false
				}
			}
		}

		lhs = &ast.BinaryExpr{Op: op, LHS: lhs, RHS: rhs}
	}
}

// parseUnary handles `unary := primary | op unary` — an ASCII
// punctuation token that isn't '(' or ',' prefixes a unary-operator
// application (§4.2.1).
func (p *Parser) parseUnary() (ast.Expr, bool) {
	if p.curTok.Kind != lexer.Raw || p.curTok.Ch == '(' || p.curTok.Ch == ',' {
		return p.parsePrimary()
	}
	op := p.curTok.Ch
	p.advance()
	operand, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	return &ast.UnaryExpr{Op: op, Operand: operand}, true
}
