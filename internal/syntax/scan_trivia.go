package syntax

// leadingTrivia collects all whitespace, line breaks, comments and directives
// in front of the next token.
func (lx *lexer) leadingTrivia() ([]Trivia, error) {
	var out []Trivia
	for !lx.cur.eof() {
		c := lx.cur.peek()
		switch {
		case isSpace(c):
			out = append(out, lx.scanWhitespace())
		case c == '\n' || c == '\r':
			out = append(out, lx.scanEndOfLine())
			lx.lineStart = true
		case c == '#' && lx.lineStart:
			out = append(out, lx.scanDirective())
		case c == '/' && (lx.cur.peekAt(1) == '/' || lx.cur.peekAt(1) == '*'):
			tr, err := lx.scanComment()
			if err != nil {
				return nil, err
			}
			out = append(out, tr)
			lx.lineStart = false
		default:
			return out, nil
		}
	}
	return out, nil
}

// trailingTrivia collects trivia after a token up to and including the first
// line break. Anything after that line break belongs to the next token.
func (lx *lexer) trailingTrivia() ([]Trivia, error) {
	var out []Trivia
	for !lx.cur.eof() {
		c := lx.cur.peek()
		switch {
		case isSpace(c):
			out = append(out, lx.scanWhitespace())
		case c == '\n' || c == '\r':
			out = append(out, lx.scanEndOfLine())
			lx.lineStart = true
			return out, nil
		case c == '/' && (lx.cur.peekAt(1) == '/' || lx.cur.peekAt(1) == '*'):
			tr, err := lx.scanComment()
			if err != nil {
				return nil, err
			}
			out = append(out, tr)
		default:
			return out, nil
		}
	}
	return out, nil
}

func (lx *lexer) trivia(kind TriviaKind, m mark) Trivia {
	sp := lx.cur.spanFrom(m)
	return Trivia{Kind: kind, Span: sp, Text: lx.cur.src[sp.Start:sp.End]}
}

func (lx *lexer) scanWhitespace() Trivia {
	m := lx.cur.mark()
	for isSpace(lx.cur.peek()) {
		lx.cur.bump()
	}
	return lx.trivia(TriviaWhitespace, m)
}

// scanEndOfLine consumes a single "\r\n", "\n" or "\r".
func (lx *lexer) scanEndOfLine() Trivia {
	m := lx.cur.mark()
	if lx.cur.eat('\r') {
		lx.cur.eat('\n')
	} else {
		lx.cur.bump()
	}
	return lx.trivia(TriviaEndOfLine, m)
}

func (lx *lexer) scanDirective() Trivia {
	m := lx.cur.mark()
	for !lx.cur.eof() && !isNewline(lx.cur.peek()) {
		lx.cur.bump()
	}
	return lx.trivia(TriviaDirective, m)
}

func (lx *lexer) scanComment() (Trivia, error) {
	m := lx.cur.mark()
	lx.cur.bump() // '/'
	if lx.cur.eat('/') {
		for !lx.cur.eof() && !isNewline(lx.cur.peek()) {
			lx.cur.bump()
		}
		return lx.trivia(TriviaLineComment, m), nil
	}

	lx.cur.bump() // '*'
	for !lx.cur.eof() {
		if lx.cur.peek() == '*' && lx.cur.peekAt(1) == '/' {
			lx.cur.advance(2)
			return lx.trivia(TriviaBlockComment, m), nil
		}
		lx.cur.bump()
	}
	return Trivia{}, lx.errorf(m, "unterminated block comment")
}
