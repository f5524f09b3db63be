package syntax

import (
	"errors"
	"fmt"
)

// ErrUnparseable is returned when text is not a single standalone expression.
var ErrUnparseable = errors.New("unparseable expression")

type lexer struct {
	cur cursor
	// lineStart is true while only whitespace has been seen on the current line.
	lineStart bool
}

// Lex splits src into tokens. The final token is always EOF and carries the
// trivia that follows the last significant token's trailing trivia.
func Lex(src string) ([]Token, error) {
	lx := &lexer{cur: newCursor(src), lineStart: true}
	return lx.run()
}

func (lx *lexer) run() ([]Token, error) {
	var toks []Token
	for {
		leading, err := lx.leadingTrivia()
		if err != nil {
			return nil, err
		}
		if lx.cur.eof() {
			m := lx.cur.mark()
			toks = append(toks, Token{Kind: EOF, Span: lx.cur.spanFrom(m), Leading: leading})
			return toks, nil
		}

		tok, err := lx.scanToken()
		if err != nil {
			return nil, err
		}
		lx.lineStart = false
		tok.Leading = leading

		tok.Trailing, err = lx.trailingTrivia()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

func (lx *lexer) scanToken() (Token, error) {
	c := lx.cur.peek()
	switch {
	case c == '$' || (c == '@' && (lx.cur.peekAt(1) == '"' || lx.cur.peekAt(1) == '$')):
		return lx.scanString()
	case c == '"':
		return lx.scanString()
	case c == '\'':
		return lx.scanChar()
	case isDigit(c) || (c == '.' && isDigit(lx.cur.peekAt(1))):
		return lx.scanNumber(), nil
	case isIdentStart(c) || c >= 0x80 || (c == '@' && isIdentStart(lx.cur.peekAt(1))):
		return lx.scanIdentOrKeyword()
	default:
		return lx.scanPunct()
	}
}

func (lx *lexer) token(kind TokenKind, m mark) Token {
	sp := lx.cur.spanFrom(m)
	return Token{Kind: kind, Text: lx.cur.src[sp.Start:sp.End], Span: sp}
}

func (lx *lexer) errorf(m mark, format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrUnparseable, m, fmt.Sprintf(format, args...))
}
