package syntax

// parseType parses a type reference with its nullable and array suffixes.
// On failure the cursor is left where it started.
func (p *parser) parseType() (*Node, bool) {
	start := p.pos
	typ, ok := p.parseTypeName()
	if !ok {
		p.pos = start
		return nil, false
	}
	for {
		switch {
		case p.at("?") && !canStartExpression(p.peekN(1)):
			typ = newNode(KindType, []*Node{typ}, p.next())

		case p.at("[") && (p.peekN(1).Is("]") || p.peekN(1).Is(",")):
			toks := []Token{p.next()}
			for p.at(",") {
				toks = append(toks, p.next())
			}
			if !p.at("]") {
				p.pos = start
				return nil, false
			}
			typ = newNode(KindType, []*Node{typ}, append(toks, p.next())...)

		default:
			return typ, true
		}
	}
}

// parseTypeName parses a possibly qualified, possibly generic name.
func (p *parser) parseTypeName() (*Node, bool) {
	t := p.peek()
	var typ *Node
	switch {
	case isPredefinedType(t):
		typ = newNode(KindPredefinedType, nil, p.next())
	case t.Kind == Ident:
		typ = p.parseSimpleName(false)
	default:
		return nil, false
	}

	for (p.at(".") || p.at("::")) && p.peekN(1).Kind == Ident {
		if typ.Kind == KindPredefinedType {
			// int.MaxValue is a member access, not a type
			break
		}
		dot := p.next()
		name := p.parseSimpleName(false)
		typ = newNode(KindQualifiedName, []*Node{typ, name}, dot)
	}
	return typ, true
}

// tryTypeArgumentList parses "<T1, T2>". The caller restores the cursor on
// failure.
func (p *parser) tryTypeArgumentList() (*Node, bool) {
	toks := []Token{p.next()}
	var args []*Node
	for {
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		args = append(args, typ)
		if !p.at(",") {
			break
		}
		toks = append(toks, p.next())
	}
	if !p.at(">") {
		return nil, false
	}
	toks = append(toks, p.next())
	return newNode(KindTypeArgumentList, args, toks...), true
}
