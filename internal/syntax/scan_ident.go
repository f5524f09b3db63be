package syntax

import (
	"unicode"
	"unicode/utf8"
)

// reserved C# keywords; contextual keywords (var, await, nameof, ...) lex as identifiers.
var keywords = map[string]struct{}{
	"abstract": {}, "as": {}, "base": {}, "bool": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "checked": {}, "class": {}, "const": {},
	"continue": {}, "decimal": {}, "default": {}, "delegate": {}, "do": {},
	"double": {}, "else": {}, "enum": {}, "event": {}, "explicit": {}, "extern": {},
	"false": {}, "finally": {}, "fixed": {}, "float": {}, "for": {}, "foreach": {},
	"goto": {}, "if": {}, "implicit": {}, "in": {}, "int": {}, "interface": {},
	"internal": {}, "is": {}, "lock": {}, "long": {}, "namespace": {}, "new": {},
	"null": {}, "object": {}, "operator": {}, "out": {}, "override": {}, "params": {},
	"private": {}, "protected": {}, "public": {}, "readonly": {}, "ref": {},
	"return": {}, "sbyte": {}, "sealed": {}, "short": {}, "sizeof": {},
	"stackalloc": {}, "static": {}, "string": {}, "struct": {}, "switch": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typeof": {}, "uint": {},
	"ulong": {}, "unchecked": {}, "unsafe": {}, "ushort": {}, "using": {},
	"virtual": {}, "void": {}, "volatile": {}, "while": {},
}

var predefinedTypes = map[string]struct{}{
	"bool": {}, "byte": {}, "char": {}, "decimal": {}, "double": {}, "float": {},
	"int": {}, "long": {}, "object": {}, "sbyte": {}, "short": {}, "string": {},
	"uint": {}, "ulong": {}, "ushort": {}, "void": {},
}

func isPredefinedType(t Token) bool {
	if t.Kind != Keyword {
		return false
	}
	_, ok := predefinedTypes[t.Text]
	return ok
}

func (lx *lexer) scanIdentOrKeyword() (Token, error) {
	m := lx.cur.mark()
	verbatim := lx.cur.eat('@')

	r, size := utf8.DecodeRuneInString(lx.cur.rest())
	if !isIdentStartRune(r) {
		return Token{}, lx.errorf(m, "unexpected character %q", r)
	}
	lx.cur.advance(size)
	for !lx.cur.eof() {
		r, size = utf8.DecodeRuneInString(lx.cur.rest())
		if !isIdentPartRune(r) {
			break
		}
		lx.cur.advance(size)
	}

	tok := lx.token(Ident, m)
	if !verbatim {
		if _, ok := keywords[tok.Text]; ok {
			tok.Kind = Keyword
		}
	}
	return tok, nil
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentPartRune(r rune) bool {
	return isIdentStartRune(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc, unicode.Cf)
}
