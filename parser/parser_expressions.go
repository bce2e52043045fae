/*
File    : mhando/parser/parser_expressions.go
*/
package parser

import (
	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/lexer"
)

// parsePrimary dispatches on the current token per the table in
// spec.md §4.2.1.
func (p *Parser) parsePrimary() (ast.Expr, bool) {
	switch p.curTok.Kind {
	case lexer.Identifier:
		return p.parseIdentifierExpr()
	case lexer.Number:
		v := p.curTok.Num
		p.advance()
		return &ast.NumberExpr{Value: v}, true
	case lexer.String:
		s := p.curTok.Text
		p.advance()
		return &ast.StringExpr{Value: s}, true
	case lexer.Raw:
		if p.curTok.Ch == '(' {
			return p.parseParenExpr()
		}
	case lexer.If:
		return p.parseIf()
	case lexer.For:
		return p.parseFor()
	case lexer.Var:
		return p.parseVar()
	case lexer.GlobalVar:
		return p.parseGlobalVarExpr()
	case lexer.Return:
		p.advance()
		val, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		return &ast.ReturnExpr{Value: val}, true
	case lexer.While:
		return p.parseWhile()
	}
	return p.errorf("unexpected token %s", p.describe(p.curTok)), false
}

func (p *Parser) parseParenExpr() (ast.Expr, bool) {
	p.advance() // '('
	inner, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	if !p.expectRaw(')', ")") {
		return nil, false
	}
	return inner, true
}

// parseIdentifierExpr handles bare names, calls, member access
// ("name.member"), and qualified calls ("name.member(...)") per
// spec.md §4.2.2.
func (p *Parser) parseIdentifierExpr() (ast.Expr, bool) {
	name := p.curTok.Text
	p.advance()

	if p.curTok.Kind == lexer.Dot {
		p.advance()
		if p.curTok.Kind != lexer.Identifier {
			return p.errorf("expected member name after '.'"), false
		}
		member := p.curTok.Text
		p.advance()
		qualified := name + "." + member
		if p.isRaw('(') {
			args, ok := p.parseCallArgs()
			if !ok {
				return nil, false
			}
			return &ast.CallExpr{Callee: qualified, Args: args}, true
		}
		return &ast.VariableExpr{Name: qualified}, true
	}

	if p.isRaw('(') {
		args, ok := p.parseCallArgs()
		if !ok {
			return nil, false
		}
		return &ast.CallExpr{Callee: name, Args: args}, true
	}
	return &ast.VariableExpr{Name: name}, true
}

// parseCallArgs parses a parenthesized, comma-separated argument list;
// the opening '(' is expected to be the current token.
func (p *Parser) parseCallArgs() ([]ast.Expr, bool) {
	p.advance() // '('
	var args []ast.Expr
	if !p.isRaw(')') {
		for {
			arg, ok := p.parseExpression(0)
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if p.isRaw(',') {
				p.advance()
				continue
			}
			break
		}
	}
	if !p.expectRaw(')', ")") {
		return nil, false
	}
	return args, true
}
