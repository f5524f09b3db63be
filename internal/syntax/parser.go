package syntax

import "fmt"

// Binary operator precedence, lowest first.
const (
	precCoalesce = iota + 1
	precOr
	precAnd
	precBitOr
	precXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
)

var binaryPrecedence = map[string]int{
	"??": precCoalesce,
	"||": precOr,
	"&&": precAnd,
	"|":  precBitOr,
	"^":  precXor,
	"&":  precBitAnd,
	"==": precEquality, "!=": precEquality,
	"<": precRelational, ">": precRelational, "<=": precRelational, ">=": precRelational,
	"is": precRelational, "as": precRelational,
	"<<": precShift,
	"+":  precAdditive, "-": precAdditive,
	"*": precMultiplicative, "/": precMultiplicative, "%": precMultiplicative,
}

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, "??=": true,
}

var prefixOperators = map[string]bool{
	"+": true, "-": true, "!": true, "~": true, "++": true, "--": true,
	"&": true, "*": true, "^": true,
}

type parser struct {
	toks []Token
	pos  int
}

// Parse parses src as exactly one standalone C# expression. Anything else,
// including the empty string, yields an error wrapping ErrUnparseable.
func Parse(src string) (*Tree, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if p.peek().Kind == EOF {
		return nil, fmt.Errorf("%w: empty expression", ErrUnparseable)
	}

	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Kind != EOF {
		return nil, p.unexpected(t)
	}
	return &Tree{Source: src, Root: root, EOF: p.peek()}, nil
}

func (p *parser) peek() Token { return p.peekN(0) }

// peekN looks n tokens ahead; past the end it keeps returning EOF.
func (p *parser) peekN(n int) Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() Token {
	t := p.peek()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) take(n int) []Token {
	out := make([]Token, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, p.next())
	}
	return out
}

func (p *parser) at(text string) bool { return p.peek().Is(text) }

func (p *parser) atIdent(text string) bool {
	t := p.peek()
	return t.Kind == Ident && t.Text == text
}

func (p *parser) expect(text string) (Token, error) {
	t := p.peek()
	if !t.Is(text) {
		return Token{}, p.unexpected(t)
	}
	return p.next(), nil
}

func (p *parser) unexpected(t Token) error {
	if t.Kind == EOF {
		return fmt.Errorf("%w: unexpected end of expression", ErrUnparseable)
	}
	return fmt.Errorf("%w: offset %d: unexpected %q", ErrUnparseable, t.Span.Start, t.Text)
}

// matching returns the index of the bracket closing the one at i, or -1.
func (p *parser) matching(i int) int {
	open := p.toks[i].Text
	var closer string
	switch open {
	case "(":
		closer = ")"
	case "[":
		closer = "]"
	case "{":
		closer = "}"
	default:
		return -1
	}
	depth := 0
	for j := i; j < len(p.toks); j++ {
		switch {
		case p.toks[j].Is(open):
			depth++
		case p.toks[j].Is(closer):
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func (p *parser) parseExpression() (*Node, error) {
	if lambda, ok, err := p.tryLambda(); ok || err != nil {
		return lambda, err
	}

	lhs, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if n := p.assignmentOperator(); n > 0 {
		ops := p.take(n)
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return newNode(KindAssignment, []*Node{lhs, rhs}, ops...), nil
	}
	return lhs, nil
}

// assignmentOperator returns how many tokens form the assignment operator at
// the cursor; ">>=" arrives as '>' followed by an adjacent ">=".
func (p *parser) assignmentOperator() int {
	t := p.peek()
	if t.Kind != Punct {
		return 0
	}
	if t.Text == ">" && p.peekN(1).Is(">=") && t.adjacent(p.peekN(1)) {
		return 2
	}
	if assignmentOperators[t.Text] {
		return 1
	}
	return 0
}

func (p *parser) parseConditional() (*Node, error) {
	cond, err := p.parseBinary(precCoalesce)
	if err != nil || !p.at("?") {
		return cond, err
	}
	question := p.next()
	whenTrue, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	colon, err := p.expect(":")
	if err != nil {
		return nil, err
	}
	whenFalse, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return newNode(KindConditional, []*Node{cond, whenTrue, whenFalse}, question, colon), nil
}

// binaryOperator returns the precedence and token count of the binary
// operator at the cursor, or zeros when there is none.
func (p *parser) binaryOperator() (prec, n int) {
	t := p.peek()
	if t.Kind != Punct && t.Kind != Keyword {
		return 0, 0
	}
	if t.Text == ">" && t.adjacent(p.peekN(1)) {
		switch {
		case p.peekN(1).Is(">"):
			return precShift, 2
		case p.peekN(1).Is(">="):
			return 0, 0
		}
	}
	prec = binaryPrecedence[t.Text]
	if prec == 0 {
		return 0, 0
	}
	return prec, 1
}

func (p *parser) parseBinary(minPrec int) (*Node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec, n := p.binaryOperator()
		if n == 0 || prec < minPrec {
			return lhs, nil
		}
		ops := p.take(n)

		switch ops[0].Text {
		case "is":
			lhs, err = p.parseIsTarget(lhs, ops[0])
			if err != nil {
				return nil, err
			}
			continue
		case "as":
			typ, ok := p.parseType()
			if !ok {
				return nil, p.unexpected(p.peek())
			}
			lhs = newNode(KindBinary, []*Node{lhs, typ}, ops...)
			continue
		}

		next := prec + 1
		if ops[0].Text == "??" {
			// right associative
			next = prec
		}
		rhs, err := p.parseBinary(next)
		if err != nil {
			return nil, err
		}
		lhs = newNode(KindBinary, []*Node{lhs, rhs}, ops...)
	}
}

// parseIsTarget distinguishes "x is T", a binary expression, from pattern
// forms such as "x is null" or "x is string s".
func (p *parser) parseIsTarget(lhs *Node, is Token) (*Node, error) {
	start := p.pos
	if typ, ok := p.parseType(); ok && p.peek().Kind != Ident && !p.at("{") {
		return newNode(KindBinary, []*Node{lhs, typ}, is), nil
	}
	p.pos = start

	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	return newNode(KindIsPattern, []*Node{lhs, pattern}, is), nil
}

func (p *parser) parsePattern() (*Node, error) {
	var prefix []Token
	if p.atIdent("not") {
		prefix = append(prefix, p.next())
	}
	if p.at("{") {
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return newNode(KindDeclaration, []*Node{block}, prefix...), nil
	}

	start := p.pos
	if typ, ok := p.parseType(); ok && p.peek().Kind == Ident {
		name := p.next()
		return newNode(KindDeclaration, []*Node{typ}, append(prefix, name)...), nil
	}
	p.pos = start

	if t := p.peek(); t.Is("<") || t.Is("<=") || t.Is(">") || t.Is(">=") {
		prefix = append(prefix, p.next())
	}
	value, err := p.parseBinary(precShift)
	if err != nil {
		return nil, err
	}
	if len(prefix) == 0 {
		return value, nil
	}
	return newNode(KindUnary, []*Node{value}, prefix...), nil
}

func (p *parser) parseUnary() (*Node, error) {
	t := p.peek()
	switch {
	case t.Kind == Punct && prefixOperators[t.Text]:
		op := p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return newNode(KindUnary, []*Node{operand}, op), nil

	case t.Is("("):
		if cast, ok, err := p.tryCast(); ok || err != nil {
			return cast, err
		}

	case t.Kind == Ident && t.Text == "await" && startsOperand(p.peekN(1)):
		kw := p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return newNode(KindAwait, []*Node{operand}, kw), nil

	case t.Is("throw"):
		kw := p.next()
		operand, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return newNode(KindThrow, []*Node{operand}, kw), nil
	}

	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(primary)
}

// tryCast parses "(T)operand". The cursor is restored when the parenthesized
// text is not a cast.
func (p *parser) tryCast() (*Node, bool, error) {
	start := p.pos
	open := p.next()
	typ, ok := p.parseType()
	if !ok || !p.at(")") {
		p.pos = start
		return nil, false, nil
	}
	closer := p.next()
	if !p.castFollows(typ) {
		p.pos = start
		return nil, false, nil
	}

	operand, err := p.parseUnary()
	if err != nil {
		return nil, true, err
	}
	return newNode(KindCast, []*Node{typ, operand}, open, closer), true, nil
}

// castFollows applies the C# cast disambiguation rule to the token after ')'.
func (p *parser) castFollows(typ *Node) bool {
	t := p.peek()
	if typ.Kind == KindPredefinedType {
		return canStartExpression(t)
	}
	switch t.Kind {
	case Ident, Number, String, Char:
		return true
	case Keyword:
		return t.Text != "is" && t.Text != "as"
	case Punct:
		return t.Text == "(" || t.Text == "~" || t.Text == "!"
	default:
		return false
	}
}

func (p *parser) tryLambda() (*Node, bool, error) {
	start := p.pos
	var mods []Token
	if p.atIdent("async") && (p.peekN(1).Kind == Ident || p.peekN(1).Is("(") || p.peekN(1).Is("delegate")) {
		mods = append(mods, p.next())
	}

	var params *Node
	t := p.peek()
	switch {
	case t.Kind == Ident && p.peekN(1).Is("=>"):
		params = newNode(KindIdentifier, nil, p.next())

	case t.Is("("):
		end := p.matching(p.pos)
		if end < 0 || !p.toks[end+1].Is("=>") {
			p.pos = start
			return nil, false, nil
		}
		params = newNode(KindParameterList, nil, p.toks[p.pos:end+1]...)
		p.pos = end + 1

	case t.Is("delegate"):
		mods = append(mods, p.next())
		var children []*Node
		if p.at("(") {
			end := p.matching(p.pos)
			if end < 0 {
				return nil, true, p.unexpected(p.peek())
			}
			children = append(children, newNode(KindParameterList, nil, p.toks[p.pos:end+1]...))
			p.pos = end + 1
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, true, err
		}
		return newNode(KindLambda, append(children, body), mods...), true, nil

	default:
		p.pos = start
		return nil, false, nil
	}

	arrow := p.next()
	var (
		body *Node
		err  error
	)
	if p.at("{") {
		body, err = p.parseBlock()
	} else {
		body, err = p.parseExpression()
	}
	if err != nil {
		return nil, true, err
	}
	return newNode(KindLambda, []*Node{params, body}, append(mods, arrow)...), true, nil
}

// parseBlock captures a balanced {...} statement block verbatim.
func (p *parser) parseBlock() (*Node, error) {
	if !p.at("{") {
		return nil, p.unexpected(p.peek())
	}
	end := p.matching(p.pos)
	if end < 0 {
		return nil, p.unexpected(p.toks[len(p.toks)-1])
	}
	block := newNode(KindBlock, nil, p.toks[p.pos:end+1]...)
	p.pos = end + 1
	return block, nil
}

// parseStringLiteral parses each interpolation hole of a string token as an
// expression of its own.
func (p *parser) parseStringLiteral() (*Node, error) {
	t := p.next()
	var holes []*Node
	for _, toks := range t.Holes {
		hp := &parser{toks: toks}
		if hp.peek().Kind == EOF {
			return nil, fmt.Errorf("%w: empty interpolation", ErrUnparseable)
		}
		expr, err := hp.parseExpression()
		if err != nil {
			return nil, err
		}
		if end := hp.peek(); end.Kind != EOF {
			return nil, hp.unexpected(end)
		}
		holes = append(holes, newNode(KindInterpolation, []*Node{expr}))
	}
	return newNode(KindLiteral, holes, t), nil
}

func (p *parser) parsePrimary() (*Node, error) {
	t := p.peek()
	switch t.Kind {
	case String:
		return p.parseStringLiteral()

	case Number, Char:
		return newNode(KindLiteral, nil, p.next()), nil

	case Ident:
		return p.parseSimpleName(true), nil

	case Keyword:
		switch t.Text {
		case "true", "false", "null":
			return newNode(KindLiteral, nil, p.next()), nil
		case "this", "base":
			return newNode(KindThis, nil, p.next()), nil
		case "default":
			if !p.peekN(1).Is("(") {
				return newNode(KindLiteral, nil, p.next()), nil
			}
			return p.parseKeywordExpression(true)
		case "typeof", "sizeof":
			return p.parseKeywordExpression(true)
		case "checked", "unchecked":
			return p.parseKeywordExpression(false)
		case "new":
			return p.parseNew()
		}
		if isPredefinedType(t) {
			return newNode(KindPredefinedType, nil, p.next()), nil
		}

	case Punct:
		if t.Is("(") {
			return p.parseParenthesized()
		}
	}
	return nil, p.unexpected(t)
}

// parseKeywordExpression handles typeof(T), sizeof(T), default(T),
// checked(expr) and unchecked(expr).
func (p *parser) parseKeywordExpression(typeOperand bool) (*Node, error) {
	kw := p.next()
	open, err := p.expect("(")
	if err != nil {
		return nil, err
	}
	var operand *Node
	if typeOperand {
		typ, ok := p.parseType()
		if !ok {
			return nil, p.unexpected(p.peek())
		}
		operand = typ
	} else {
		operand, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	closer, err := p.expect(")")
	if err != nil {
		return nil, err
	}
	return newNode(KindKeywordExpression, []*Node{operand}, kw, open, closer), nil
}

func (p *parser) parseParenthesized() (*Node, error) {
	open := p.next()
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.at(",") {
		closer, err := p.expect(")")
		if err != nil {
			return nil, err
		}
		return newNode(KindParenthesized, []*Node{first}, open, closer), nil
	}

	elems := []*Node{first}
	toks := []Token{open}
	for p.at(",") {
		toks = append(toks, p.next())
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	closer, err := p.expect(")")
	if err != nil {
		return nil, err
	}
	return newNode(KindTuple, elems, append(toks, closer)...), nil
}

// parseSimpleName parses an identifier, optionally with type arguments. In
// expression context "a < b > c" stays a comparison unless the token after
// '>' is one that can only follow a generic name.
func (p *parser) parseSimpleName(expression bool) *Node {
	ident := p.next()
	if p.at("<") {
		start := p.pos
		if args, ok := p.tryTypeArgumentList(); ok && (!expression || genericFollows(p.peek())) {
			return newNode(KindGenericName, []*Node{args}, ident)
		}
		p.pos = start
	}
	return newNode(KindIdentifier, nil, ident)
}

func genericFollows(t Token) bool {
	if t.Kind == EOF {
		return true
	}
	if t.Kind != Punct {
		return false
	}
	switch t.Text {
	case "(", ")", "]", "}", ":", ";", ",", ".", "?", "==", "!=", "|", "^", "&&", "||", "&", "[":
		return true
	default:
		return false
	}
}

func (p *parser) parsePostfix(expr *Node) (*Node, error) {
	for {
		t := p.peek()
		switch {
		case t.Is(".") || t.Is("->") || t.Is("::"):
			if p.peekN(1).Kind != Ident {
				return nil, p.unexpected(p.peekN(1))
			}
			dot := p.next()
			name := p.parseSimpleName(true)
			kind := KindMemberAccess
			if dot.Text == "::" {
				kind = KindQualifiedName
			}
			expr = newNode(kind, []*Node{expr, name}, dot)

		case t.Is("("):
			args, err := p.parseArgumentList("(", ")", KindArgumentList)
			if err != nil {
				return nil, err
			}
			expr = newNode(KindInvocation, []*Node{expr, args})

		case t.Is("["):
			args, err := p.parseArgumentList("[", "]", KindBracketedArgumentList)
			if err != nil {
				return nil, err
			}
			expr = newNode(KindElementAccess, []*Node{expr, args})

		case t.Is("++") || t.Is("--"):
			expr = newNode(KindPostfix, []*Node{expr}, p.next())

		case t.Is("!") && !canStartExpression(p.peekN(1)):
			// null-forgiving operator
			expr = newNode(KindPostfix, []*Node{expr}, p.next())

		case t.Is("?."):
			q := p.next()
			if p.peek().Kind != Ident {
				return nil, p.unexpected(p.peek())
			}
			binding := newNode(KindMemberBinding, []*Node{p.parseSimpleName(true)})
			whenNotNull, err := p.parsePostfix(binding)
			if err != nil {
				return nil, err
			}
			return newNode(KindConditionalAccess, []*Node{expr, whenNotNull}, q), nil

		case t.Is("?") && p.peekN(1).Is("[") && t.adjacent(p.peekN(1)):
			q := p.next()
			args, err := p.parseArgumentList("[", "]", KindBracketedArgumentList)
			if err != nil {
				return nil, err
			}
			whenNotNull, err := p.parsePostfix(newNode(KindElementBinding, []*Node{args}))
			if err != nil {
				return nil, err
			}
			return newNode(KindConditionalAccess, []*Node{expr, whenNotNull}, q), nil

		default:
			return expr, nil
		}
	}
}

func (p *parser) parseArgumentList(open, closer string, kind NodeKind) (*Node, error) {
	openTok, err := p.expect(open)
	if err != nil {
		return nil, err
	}
	toks := []Token{openTok}
	var args []*Node
	if !p.at(closer) {
		for {
			arg, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.at(",") {
				break
			}
			toks = append(toks, p.next())
		}
	}
	closeTok, err := p.expect(closer)
	if err != nil {
		return nil, err
	}
	return newNode(kind, args, append(toks, closeTok)...), nil
}

func (p *parser) parseArgument() (*Node, error) {
	var toks []Token
	if p.peek().Kind == Ident && p.peekN(1).Is(":") {
		toks = append(toks, p.next(), p.next())
	}
	if t := p.peek(); t.Is("ref") || t.Is("out") || t.Is("in") {
		toks = append(toks, p.next())
		start := p.pos
		// out var x, out int x
		if typ, ok := p.parseType(); ok && p.peek().Kind == Ident &&
			(p.peekN(1).Is(",") || p.peekN(1).Is(")")) {
			decl := newNode(KindDeclaration, []*Node{typ}, p.next())
			return newNode(KindArgument, []*Node{decl}, toks...), nil
		}
		p.pos = start
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return newNode(KindArgument, []*Node{expr}, toks...), nil
}

func (p *parser) parseNew() (*Node, error) {
	toks := []Token{p.next()}
	var children []*Node

	switch {
	case p.at("["):
		// new[] { ... }
		toks = append(toks, p.next())
		for p.at(",") {
			toks = append(toks, p.next())
		}
		closer, err := p.expect("]")
		if err != nil {
			return nil, err
		}
		toks = append(toks, closer)
		init, err := p.parseInitializer()
		if err != nil {
			return nil, err
		}
		children = append(children, init)

	case p.at("{"):
		init, err := p.parseInitializer()
		if err != nil {
			return nil, err
		}
		children = append(children, init)

	case p.at("("):
		args, err := p.parseArgumentList("(", ")", KindArgumentList)
		if err != nil {
			return nil, err
		}
		children = append(children, args)
		if p.at("{") {
			init, err := p.parseInitializer()
			if err != nil {
				return nil, err
			}
			children = append(children, init)
		}

	default:
		typ, ok := p.parseTypeName()
		if !ok {
			return nil, p.unexpected(p.peek())
		}
		children = append(children, typ)
		switch {
		case p.at("("):
			args, err := p.parseArgumentList("(", ")", KindArgumentList)
			if err != nil {
				return nil, err
			}
			children = append(children, args)
		case p.at("["):
			sizes, err := p.parseArgumentList("[", "]", KindBracketedArgumentList)
			if err != nil {
				return nil, err
			}
			children = append(children, sizes)
			for p.at("[") && (p.peekN(1).Is("]") || p.peekN(1).Is(",")) {
				end := p.matching(p.pos)
				if end < 0 {
					return nil, p.unexpected(p.toks[len(p.toks)-1])
				}
				toks = append(toks, p.toks[p.pos:end+1]...)
				p.pos = end + 1
			}
		}
		if p.at("{") {
			init, err := p.parseInitializer()
			if err != nil {
				return nil, err
			}
			children = append(children, init)
		}
		if len(children) == 1 {
			return nil, p.unexpected(p.peek())
		}
	}
	return newNode(KindObjectCreation, children, toks...), nil
}

func (p *parser) parseInitializer() (*Node, error) {
	open, err := p.expect("{")
	if err != nil {
		return nil, err
	}
	toks := []Token{open}
	var elems []*Node
	for !p.at("}") {
		var (
			elem *Node
			err  error
		)
		switch {
		case p.at("{"):
			elem, err = p.parseInitializer()
		case p.at("["):
			elem, err = p.parseIndexInitializer()
		default:
			elem, err = p.parseExpression()
		}
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if !p.at(",") {
			break
		}
		toks = append(toks, p.next())
	}
	closer, err := p.expect("}")
	if err != nil {
		return nil, err
	}
	return newNode(KindInitializer, elems, append(toks, closer)...), nil
}

// parseIndexInitializer parses "[key] = value" inside an object initializer.
func (p *parser) parseIndexInitializer() (*Node, error) {
	index, err := p.parseArgumentList("[", "]", KindBracketedArgumentList)
	if err != nil {
		return nil, err
	}
	eq, err := p.expect("=")
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return newNode(KindAssignment, []*Node{index, value}, eq), nil
}

// startsOperand reports whether t can begin a primary expression.
func startsOperand(t Token) bool {
	switch t.Kind {
	case Ident, Number, String, Char:
		return true
	case Keyword:
		switch t.Text {
		case "this", "base", "new", "typeof", "default", "sizeof", "checked",
			"unchecked", "true", "false", "null", "delegate":
			return true
		}
		return isPredefinedType(t)
	case Punct:
		return t.Text == "("
	default:
		return false
	}
}

func canStartExpression(t Token) bool {
	return startsOperand(t) || (t.Kind == Punct && prefixOperators[t.Text])
}
