/*
File    : mhando/parser/parser.go
*/

// Package parser implements a recursive-descent, operator-precedence
// parser for mhando source text. It mirrors the teacher's shape (a
// Parser struct carrying one-token lookahead plus an Errors slice that
// every failing production appends to instead of panicking) but speaks
// the grammar of spec.md §4.2 rather than the teacher's C-like grammar:
// Shona-keyword control forms, zita/zitaGuru binding forms, and
// user-definable unary/binary operators threaded through a shared
// precedence table instead of a fixed Pratt table.
package parser

import (
	"fmt"

	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/lexer"
	"github.com/tadiwanashe/mhando/scope"
)

// Parser turns a token stream into AST nodes one top-level item at a
// time. It shares FunctionProtos/Globals/BinopPrecedence with the rest
// of the driver via Tables — see the scope package doc comment for why
// those maps are passed by reference rather than hidden behind a
// singleton.
type Parser struct {
	lex     *lexer.Lexer
	curTok  lexer.Token
	Tables  *scope.Tables
	Errors  []string
	anonCtr int
}

// NewParser creates a parser over src sharing the given symbol tables.
func NewParser(src string, tables *scope.Tables) *Parser {
	p := &Parser{lex: lexer.NewLexer(src), Tables: tables}
	p.advance()
	return p
}

// HasErrors reports whether any production has failed so far.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

func (p *Parser) advance() {
	p.curTok = p.lex.NextToken()
}

// errorf records a diagnostic at the current line and returns nil so
// call sites can `return p.errorf(...)` directly — the sole recovery
// policy (spec.md §4.2.5) is ParseTopLevel skipping one token and its
// caller resuming.
func (p *Parser) errorf(format string, args ...interface{}) ast.Expr {
	msg := fmt.Sprintf("Kukanganisa pa line %d: %s", p.curTok.Line, fmt.Sprintf(format, args...))
	p.Errors = append(p.Errors, msg)
	return nil
}

func (p *Parser) errorProto(format string, args ...interface{}) *ast.Prototype {
	p.errorf(format, args...)
	return nil
}

// expectRaw consumes the current token if it is Raw(ch), recording an
// error and leaving the token stream untouched otherwise.
func (p *Parser) expectRaw(ch byte, what string) bool {
	if p.curTok.Kind == lexer.Raw && p.curTok.Ch == ch {
		p.advance()
		return true
	}
	p.errorf("expected '%s', got %s", what, p.describe(p.curTok))
	return false
}

func (p *Parser) isRaw(ch byte) bool {
	return p.curTok.Kind == lexer.Raw && p.curTok.Ch == ch
}

func (p *Parser) describe(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.Raw:
		return string(tok.Ch)
	case lexer.Identifier, lexer.Number, lexer.String:
		return tok.Text
	default:
		return tok.Kind.String()
	}
}

// skipSemicolons consumes zero or more trailing ';' separators.
func (p *Parser) skipSemicolons() {
	for p.curTok.Kind == lexer.Semicolon {
		p.advance()
	}
}

// TopLevel is the sum of items ParseTopLevel can hand back to the
// driver: *ast.FunctionAST (basa definition, or a wrapped top-level
// expression), *ast.ClassAST, *ast.Prototype (extern), or
// *ast.GlobalVarExpr.
type TopLevel interface{ isTopLevel() }

func (*ast.FunctionAST) isTopLevel()   {}
func (*ast.ClassAST) isTopLevel()      {}
func (*ast.Prototype) isTopLevel()     {}
func (*ast.GlobalVarExpr) isTopLevel() {}

// ParseTopLevel dispatches on the current token per spec.md §4.2:
// ';' is skipped, Def/Class/Extern/GlobalVar parse their own form, EOF
// reports done==true, and anything else is wrapped as an anonymous
// top-level expression. item is nil when the item failed to parse (one
// token has then been skipped, and done is true if that reached EOF) —
// the driver should simply loop again without treating a nil item as an
// error by itself (errors already landed in p.Errors).
func (p *Parser) ParseTopLevel() (item TopLevel, done bool) {
	for p.curTok.Kind == lexer.Semicolon {
		p.advance()
	}
	switch p.curTok.Kind {
	case lexer.EOF:
		return nil, true
	case lexer.Def:
		if fn := p.parseDefinition(); fn != nil {
			return fn, false
		}
	case lexer.Class:
		if cls := p.parseClass(); cls != nil {
			return cls, false
		}
	case lexer.Extern:
		if proto := p.parseExtern(); proto != nil {
			return proto, false
		}
	case lexer.GlobalVar:
		if gv := p.parseGlobalVarTopLevel(); gv != nil {
			return gv, false
		}
	default:
		if fn := p.parseToplevelExpr(); fn != nil {
			return fn, false
		}
	}
	// Recovery: advance exactly one token and let the driver retry.
	if p.curTok.Kind != lexer.EOF {
		p.advance()
	}
	return nil, p.curTok.Kind == lexer.EOF
}

// parseToplevelExpr wraps a bare expression into an anonymous nullary
// function, matching the Kaleidoscope-style "every top-level expression
// is a one-shot function" convention (glossary: Anonymous top-level).
func (p *Parser) parseToplevelExpr() *ast.FunctionAST {
	expr, ok := p.parseExpression(0)
	if !ok {
		return nil
	}
	p.skipSemicolons()
	p.anonCtr++
	name := fmt.Sprintf("__anon_expr%d", p.anonCtr)
	return &ast.FunctionAST{
		Proto: &ast.Prototype{Name: name},
		Body:  []ast.Expr{expr},
	}
}
