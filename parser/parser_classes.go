/*
File    : mhando/parser/parser_classes.go
*/
package parser

import (
	"github.com/tadiwanashe/mhando/ast"
	"github.com/tadiwanashe/mhando/lexer"
)

// parseClass parses `kirasi Name { (method | member)* }` per
// spec.md §4.2.3. A member is a zita-style binding without the body
// ("name [= expr] (, name [= expr])*", optionally followed by ';'); a method is
// an ordinary `basa` definition. §3.5 lowering (qualified naming) is
// left to the code generator — the parser only collects the raw
// pieces.
func (p *Parser) parseClass() *ast.ClassAST {
	p.advance() // kirasi
	if p.curTok.Kind != lexer.Identifier {
		p.errorf("expected class name after kirasi")
		return nil
	}
	name := p.curTok.Text
	p.advance()
	if !p.expectRaw('{', "{") {
		return nil
	}

	cls := &ast.ClassAST{Name: name}
	p.skipSemicolons()
	for !p.isRaw('}') && p.curTok.Kind != lexer.EOF {
		if p.curTok.Kind == lexer.Def {
			p.advance()
			proto := p.parsePrototype()
			if proto == nil {
				return nil
			}
			body, ok := p.parseStatementSequence()
			if !ok {
				return nil
			}
			cls.Methods = append(cls.Methods, &ast.FunctionAST{Proto: proto, Body: body})
		} else if p.curTok.Kind == lexer.Identifier {
			bindings, ok := p.parseBindings()
			if !ok {
				return nil
			}
			cls.Members = append(cls.Members, bindings...)
		} else {
			p.errorf("expected method or member declaration inside kirasi %s", name)
			return nil
		}
		p.skipSemicolons()
	}
	if !p.expectRaw('}', "}") {
		return nil
	}
	return cls
}
