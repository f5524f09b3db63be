package syntax

import "strings"

// punctuators ordered longest first. ">>" and ">>=" are deliberately absent:
// the parser rebuilds them from adjacent '>' tokens so that nested generic
// argument lists close correctly.
var punctuators = []string{
	"<<=", "??=",
	"&&", "||", "==", "!=", "<=", ">=", "<<", "+=", "-=", "*=", "/=", "%=",
	"&=", "|=", "^=", "??", "?.", "=>", "->", "::", "++", "--", "..",
	"(", ")", "{", "}", "[", "]", ".", ",", ":", ";", "+", "-", "*", "/",
	"%", "&", "|", "^", "!", "~", "=", "<", ">", "?",
}

func (lx *lexer) scanPunct() (Token, error) {
	m := lx.cur.mark()
	rest := lx.cur.rest()
	for _, p := range punctuators {
		if !strings.HasPrefix(rest, p) {
			continue
		}
		// "a?.5:b" is a conditional with a numeric branch, not a null-conditional access.
		if p == "?." && len(rest) > 2 && isDigit(rest[2]) {
			continue
		}
		lx.cur.advance(len(p))
		return lx.token(Punct, m), nil
	}
	return Token{}, lx.errorf(m, "unexpected character %q", lx.cur.peek())
}
