package syntax

func (lx *lexer) scanNumber() Token {
	m := lx.cur.mark()

	if lx.cur.peek() == '0' {
		switch lx.cur.peekAt(1) {
		case 'x', 'X':
			lx.cur.advance(2)
			for isHex(lx.cur.peek()) || lx.cur.peek() == '_' {
				lx.cur.bump()
			}
			lx.scanNumberSuffix()
			return lx.token(Number, m)
		case 'b', 'B':
			lx.cur.advance(2)
			for c := lx.cur.peek(); c == '0' || c == '1' || c == '_'; c = lx.cur.peek() {
				lx.cur.bump()
			}
			lx.scanNumberSuffix()
			return lx.token(Number, m)
		}
	}

	lx.scanDigits()
	if lx.cur.peek() == '.' && isDigit(lx.cur.peekAt(1)) {
		lx.cur.bump()
		lx.scanDigits()
	}
	if c := lx.cur.peek(); c == 'e' || c == 'E' {
		next := lx.cur.peekAt(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(lx.cur.peekAt(2))) {
			lx.cur.advance(2)
			lx.scanDigits()
		}
	}
	lx.scanNumberSuffix()
	return lx.token(Number, m)
}

func (lx *lexer) scanDigits() {
	for isDigit(lx.cur.peek()) || lx.cur.peek() == '_' {
		lx.cur.bump()
	}
}

// scanNumberSuffix consumes type suffixes such as u, L, UL, f, d and m.
func (lx *lexer) scanNumberSuffix() {
	for i := 0; i < 2; i++ {
		switch lx.cur.peek() {
		case 'u', 'U', 'l', 'L', 'f', 'F', 'd', 'D', 'm', 'M':
			lx.cur.bump()
		default:
			return
		}
	}
}
