/*
File    : mhando/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allTokens(src string) []Token {
	lex := NewLexer(src)
	var toks []Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestNextToken_Keywords(t *testing.T) {
	toks := allTokens(`basa kana then kanaKuti pakati mu kusvika dzosa zita zitaGuru`)
	kinds := make([]TokenKind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []TokenKind{Def, If, Then, Else, For, In, While, Return, Var, GlobalVar, EOF}, kinds)
}

func TestNextToken_NumberAndIdentifier(t *testing.T) {
	toks := allTokens(`fib(n) 3.14`)
	assert.Equal(t, Identifier, toks[0].Kind)
	assert.Equal(t, "fib", toks[0].Text)
	assert.Equal(t, Raw, toks[1].Kind)
	assert.Equal(t, byte('('), toks[1].Ch)
	assert.Equal(t, Number, toks[4].Kind)
	assert.InDelta(t, 3.14, toks[4].Num, 1e-9)
}

func TestNextToken_MultiDotNumberIsTolerated(t *testing.T) {
	toks := allTokens(`1.2.3`)
	assert.Equal(t, Number, toks[0].Kind)
	assert.InDelta(t, 1.2, toks[0].Num, 1e-9)
}

func TestNextToken_StringLiteral(t *testing.T) {
	toks := allTokens(`"hello world"`)
	assert.Equal(t, String, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Text)
}

func TestNextToken_UnterminatedStringYieldsEOF(t *testing.T) {
	toks := allTokens(`"hello`)
	assert.Equal(t, EOF, toks[0].Kind)
}

func TestNextToken_CommentRunsToNewline(t *testing.T) {
	toks := allTokens("1 + 2 # three\n+ 3")
	var kinds []TokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []TokenKind{Number, Raw, Number, Raw, Number, EOF}, kinds)
}

func TestNextToken_DotIsMemberAccessNotNumber(t *testing.T) {
	toks := allTokens(`Point.dist`)
	kinds := make([]TokenKind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []TokenKind{Identifier, Dot, Identifier, EOF}, kinds)
	assert.Equal(t, "Point", toks[0].Text)
	assert.Equal(t, "dist", toks[2].Text)
}

func TestNextToken_RawPunctuation(t *testing.T) {
	toks := allTokens(`a < b > c : d`)
	assert.Equal(t, byte('<'), toks[1].Ch)
	assert.Equal(t, byte('>'), toks[3].Ch)
	assert.Equal(t, byte(':'), toks[5].Ch)
}
