/*
File    : mhando/parser/parser_controls.go
*/
package parser

import (
	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/lexer"
)

// parseStatementSequence parses the brace-delimited statement sequence
// shared by every control form: '{' stmt (';' stmt)* '}'. Trailing and
// separating ';' are both optional, per spec.md §4.2.3.
func (p *Parser) parseStatementSequence() ([]ast.Expr, bool) {
	if !p.expectRaw('{', "{") {
		return nil, false
	}
	var stmts []ast.Expr
	p.skipSemicolons()
	for !p.isRaw('}') && p.curTok.Kind != lexer.EOF {
		stmt, ok := p.parseExpression(0)
		if !ok {
			return nil, false
		}
		stmts = append(stmts, stmt)
		p.skipSemicolons()
	}
	if !p.expectRaw('}', "}") {
		return nil, false
	}
	return stmts, true
}

// parseIf parses `kana ( cond ) { then } [kanaKuti { else }]`.
func (p *Parser) parseIf() (ast.Expr, bool) {
	p.advance() // kana
	if !p.expectRaw('(', "(") {
		return nil, false
	}
	cond, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	if !p.expectRaw(')', ")") {
		return nil, false
	}
	thenStmts, ok := p.parseStatementSequence()
	if !ok {
		return nil, false
	}
	var elseStmts []ast.Expr
	if p.curTok.Kind == lexer.Else {
		p.advance()
		elseStmts, ok = p.parseStatementSequence()
		if !ok {
			return nil, false
		}
	}
	return &ast.IfExpr{Cond: cond, Then: thenStmts, Else: elseStmts}, true
}

// parseWhile parses `kusvika ( cond ) { body }`.
func (p *Parser) parseWhile() (ast.Expr, bool) {
	p.advance() // kusvika
	if !p.expectRaw('(', "(") {
		return nil, false
	}
	cond, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	if !p.expectRaw(')', ")") {
		return nil, false
	}
	body, ok := p.parseStatementSequence()
	if !ok {
		return nil, false
	}
	return &ast.WhileExpr{Cond: cond, Body: body}, true
}

// parseFor parses `pakati ( var = start , end [ , step ] ) { body }`.
func (p *Parser) parseFor() (ast.Expr, bool) {
	p.advance() // pakati
	if !p.expectRaw('(', "(") {
		return nil, false
	}
	if p.curTok.Kind != lexer.Identifier {
		return p.errorf("expected loop variable name"), false
	}
	varName := p.curTok.Text
	p.advance()
	if !p.expectRaw('=', "=") {
		return nil, false
	}
	start, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	if !p.expectRaw(',', ",") {
		return nil, false
	}
	end, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	var step ast.Expr
	if p.isRaw(',') {
		p.advance()
		step, ok = p.parseExpression(0)
		if !ok {
			return nil, false
		}
	}
	if !p.expectRaw(')', ")") {
		return nil, false
	}
	body, ok := p.parseStatementSequence()
	if !ok {
		return nil, false
	}
	return &ast.ForExpr{Var: varName, Start: start, End: end, Step: step, Body: body}, true
}

// parseBindings parses `name [= expr] (, name [= expr])*`, shared by
// zita and zitaGuru.
func (p *Parser) parseBindings() ([]ast.Binding, bool) {
	var bindings []ast.Binding
	for {
		if p.curTok.Kind != lexer.Identifier {
			p.errorf("expected variable name")
			return nil, false
		}
		name := p.curTok.Text
		p.advance()
		var init ast.Expr
		if p.isRaw('=') {
			p.advance()
			var ok bool
			init, ok = p.parseExpression(0)
			if !ok {
				return nil, false
			}
		}
		bindings = append(bindings, ast.Binding{Name: name, Init: init})
		if p.isRaw(',') {
			p.advance()
			continue
		}
		break
	}
	return bindings, true
}

// parseVar parses `zita bindings mu body`.
func (p *Parser) parseVar() (ast.Expr, bool) {
	p.advance() // zita
	bindings, ok := p.parseBindings()
	if !ok {
		return nil, false
	}
	if p.curTok.Kind != lexer.In {
		return p.errorf("expected 'mu' after zita bindings"), false
	}
	p.advance() // mu
	body, ok := p.parseExpression(0)
	if !ok {
		return nil, false
	}
	return &ast.VarExpr{Bindings: bindings, Body: []ast.Expr{body}}, true
}

// parseGlobalVarExpr parses `zitaGuru bindings` as a primary expression
// (§4.2.1 allows GlobalVar "inside an expression context").
func (p *Parser) parseGlobalVarExpr() (ast.Expr, bool) {
	p.advance() // zitaGuru
	bindings, ok := p.parseBindings()
	if !ok {
		return nil, false
	}
	return &ast.GlobalVarExpr{Bindings: bindings}, true
}

// parseGlobalVarTopLevel is the top-level dispatch entry for
// zitaGuru — identical grammar to parseGlobalVarExpr, returned as a
// distinct TopLevel value so the driver can emit it directly into the
// current module without wrapping it in an anonymous function.
func (p *Parser) parseGlobalVarTopLevel() *ast.GlobalVarExpr {
	p.advance() // zitaGuru
	bindings, ok := p.parseBindings()
	if !ok {
		return nil
	}
	return &ast.GlobalVarExpr{Bindings: bindings}
}
