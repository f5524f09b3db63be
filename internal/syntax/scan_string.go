package syntax

// scanString handles "...", @"...", $"...", $@"..." and @$"...".
func (lx *lexer) scanString() (Token, error) {
	m := lx.cur.mark()
	verbatim, interpolated := false, false
	for {
		switch {
		case lx.cur.eat('@'):
			verbatim = true
			continue
		case lx.cur.eat('$'):
			interpolated = true
			continue
		}
		break
	}
	if !lx.cur.eat('"') {
		return Token{}, lx.errorf(m, "unexpected character %q", lx.cur.src[m])
	}

	var holes [][]Token
	for !lx.cur.eof() {
		c := lx.cur.peek()
		switch {
		case c == '"':
			lx.cur.bump()
			if verbatim && lx.cur.peek() == '"' {
				lx.cur.bump()
				continue
			}
			tok := lx.token(String, m)
			tok.Holes = holes
			return tok, nil
		case c == '\\' && !verbatim:
			lx.cur.advance(2)
		case isNewline(c) && !verbatim:
			return Token{}, lx.errorf(m, "newline in string literal")
		case c == '{' && interpolated:
			if lx.cur.peekAt(1) == '{' {
				lx.cur.advance(2)
				continue
			}
			hole, err := lx.scanInterpolationHole()
			if err != nil {
				return Token{}, err
			}
			holes = append(holes, hole)
		case c == '}' && interpolated && lx.cur.peekAt(1) == '}':
			lx.cur.advance(2)
		default:
			lx.cur.bump()
		}
	}
	return Token{}, lx.errorf(m, "unterminated string literal")
}

// scanInterpolationHole consumes a balanced {...} hole, stepping over nested
// string and character literals, and lexes its expression. The expression
// ends at the first top-level ',' (alignment) or ':' (format string).
func (lx *lexer) scanInterpolationHole() ([]Token, error) {
	m := lx.cur.mark()
	lx.cur.bump() // '{'
	start := lx.cur.mark()
	var (
		end   mark
		ended bool
		depth int
	)
	for !lx.cur.eof() {
		c := lx.cur.peek()
		switch {
		case c == '}' && depth == 0:
			if !ended {
				end = lx.cur.mark()
			}
			lx.cur.bump()
			sub := &lexer{cur: lx.cur.sub(start, end)}
			return sub.run()
		case ended:
			lx.cur.bump()
		case c == ':' && lx.cur.peekAt(1) == ':':
			lx.cur.advance(2)
		case depth == 0 && (c == ',' || c == ':'):
			end, ended = lx.cur.mark(), true
			lx.cur.bump()
		case c == '(' || c == '[' || c == '{':
			depth++
			lx.cur.bump()
		case c == ')' || c == ']' || c == '}':
			depth--
			lx.cur.bump()
		case c == '"' || c == '$' || (c == '@' && (lx.cur.peekAt(1) == '"' || lx.cur.peekAt(1) == '$')):
			if _, err := lx.scanString(); err != nil {
				return nil, err
			}
		case c == '\'':
			if _, err := lx.scanChar(); err != nil {
				return nil, err
			}
		default:
			lx.cur.bump()
		}
	}
	return nil, lx.errorf(m, "unterminated interpolation")
}

func (lx *lexer) scanChar() (Token, error) {
	m := lx.cur.mark()
	lx.cur.bump() // '\''
	for !lx.cur.eof() {
		switch c := lx.cur.peek(); {
		case c == '\\':
			lx.cur.advance(2)
		case c == '\'':
			lx.cur.bump()
			return lx.token(Char, m), nil
		case isNewline(c):
			return Token{}, lx.errorf(m, "newline in character literal")
		default:
			lx.cur.bump()
		}
	}
	return Token{}, lx.errorf(m, "unterminated character literal")
}
