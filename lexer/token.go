/*
File    : mhando/lexer/token.go
*/
package lexer

import "fmt"

// TokenKind identifies the syntactic category of a Token.
//
// The set is closed: §3.1 of the specification enumerates every kind the
// lexer may produce. Raw carries the literal byte for any punctuation
// character not otherwise recognized (operators, braces, commas, ...),
// so the parser — not the lexer — decides what punctuation means.
type TokenKind int

const (
	EOF TokenKind = iota
	Def
	Extern
	Identifier
	Number
	If
	Then
	Else
	For
	In
	Binary
	Unary
	Var
	GlobalVar
	Return
	String
	Open
	Read
	Write
	Append
	Close
	Delete
	While
	Do
	Class
	New
	This
	Extends
	Public
	Private
	Dot
	Arrow
	Semicolon
	Raw
)

var kindNames = map[TokenKind]string{
	EOF: "EOF", Def: "basa", Extern: "extern", Identifier: "identifier",
	Number: "number", If: "kana", Then: "then", Else: "kanaKuti",
	For: "pakati", In: "mu", Binary: "binary", Unary: "unary",
	Var: "zita", GlobalVar: "zitaGuru", Return: "dzosa", String: "string",
	Open: "vhura", Read: "verenga", Write: "write", Append: "append",
	Close: "close", Delete: "bvisa", While: "kusvika", Do: "ita",
	Class: "kirasi", New: "new", This: "this", Extends: "extends",
	Public: "public", Private: "private", Dot: ".", Arrow: "->",
	Semicolon: ";", Raw: "raw",
}

func (k TokenKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a tagged lexical unit. Identifier and String carry Text;
// Number carries Num; Raw carries the ASCII code of the pass-through
// character in Ch. Line is 1-indexed, for diagnostics.
type Token struct {
	Kind TokenKind
	Text string
	Num  float64
	Ch   byte
	Line int
}

// keywords maps the Shona-flavoured surface spelling to its token kind.
// Exact spellings per spec.md §4.1.
var keywords = map[string]TokenKind{
	"basa":     Def,
	"extern":   Extern,
	"kana":     If,
	"then":     Then,
	"kanaKuti": Else,
	"pakati":   For,
	"mu":       In,
	"binary":   Binary,
	"unary":    Unary,
	"zita":     Var,
	"zitaGuru": GlobalVar,
	"dzosa":    Return,
	"vhura":    Open,
	"verenga":  Read,
	"bvisa":    Delete,
	"kusvika":  While,
	"ita":      Do,
	"kirasi":   Class,
	"new":      New,
	"this":     This,
	"extends":  Extends,
	"public":   Public,
	"private":  Private,
}

func lookupKeyword(ident string) (TokenKind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
