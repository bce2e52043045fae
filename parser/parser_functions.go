/*
File    : mhando/parser/parser_functions.go
*/
package parser

import (
	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/lexer"
)

// parsePrototype parses one of the three prototype forms in
// spec.md §4.2.4:
//
//	ident '(' ident* ')'
//	unary op '(' ident ')'
//	binary op [number] '(' ident ident ')'
func (p *Parser) parsePrototype() *ast.Prototype {
	var name string
	isOperator := false
	precedence := 30

	switch p.curTok.Kind {
	case lexer.Identifier:
		name = p.curTok.Text
		p.advance()
	case lexer.Unary:
		p.advance()
		if p.curTok.Kind != lexer.Raw {
			return p.errorProto("expected operator character after unary")
		}
		name = "unary" + string(p.curTok.Ch)
		isOperator = true
		p.advance()
	case lexer.Binary:
		p.advance()
		if p.curTok.Kind != lexer.Raw {
			return p.errorProto("expected operator character after binary")
		}
		name = "binary" + string(p.curTok.Ch)
		isOperator = true
		p.advance()
		if p.curTok.Kind == lexer.Number {
			precedence = int(p.curTok.Num)
			if precedence < 1 || precedence > 100 {
				return p.errorProto("binary operator precedence must be in [1,100]")
			}
			p.advance()
		}
	default:
		return p.errorProto("expected function name in prototype")
	}

	if !p.expectRawProto('(') {
		return nil
	}
	var args []string
	for p.curTok.Kind == lexer.Identifier {
		args = append(args, p.curTok.Text)
		p.advance()
	}
	if !p.expectRawProto(')') {
		return nil
	}

	if isOperator {
		wantArgs := 2
		if name[:5] == "unary" {
			wantArgs = 1
		}
		if len(args) != wantArgs {
			return p.errorProto("operator '%s' declared with %d args, expected %d", name, len(args), wantArgs)
		}
	}

	return &ast.Prototype{Name: name, Args: args, IsOperator: isOperator, Precedence: precedence}
}

func (p *Parser) expectRawProto(ch byte) bool {
	if p.curTok.Kind == lexer.Raw && p.curTok.Ch == ch {
		p.advance()
		return true
	}
	p.errorf("expected '%s'", string(ch))
	return false
}

// parseDefinition parses `basa prototype { stmts }`, installing a
// binary operator's precedence into the shared table immediately so
// that the body itself (and anything parsed after it) can use the
// operator at its declared precedence.
func (p *Parser) parseDefinition() *ast.FunctionAST {
	p.advance() // basa
	proto := p.parsePrototype()
	if proto == nil {
		return nil
	}
	if proto.IsBinaryOp() {
		p.Tables.BinopPrecedence[proto.OperatorChar()] = proto.Precedence
	}
	body, ok := p.parseStatementSequence()
	if !ok {
		return nil
	}
	return &ast.FunctionAST{Proto: proto, Body: body}
}

// parseExtern parses `extern prototype` — a declaration with no body.
func (p *Parser) parseExtern() *ast.Prototype {
	p.advance() // extern
	proto := p.parsePrototype()
	p.skipSemicolons()
	return proto
}
