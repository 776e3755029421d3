package rouleaux

import "fmt"

// Parser implements the grammar described by the token stream it is handed:
// statement, expression and declaration productions call each other by
// plain recursive descent, with binary operators resolved by precedence
// climbing (continueExpression + fixPrecedence) rather than a separate
// grammar tier per precedence level. A Parser holds no goroutines or
// channels and every production returns synchronously; a parse only blocks
// on the TokenStream it was given, never on its own internals.
type Parser struct {
	lex  TokenStream
	done bool
}

// NewParser creates a Parser reading tokens from lex.
func NewParser(lex TokenStream) *Parser {
	return &Parser{lex: lex}
}

func (p *Parser) peek() Token     { return p.lex.Peek() }
func (p *Parser) next() Token     { return p.lex.Next() }
func (p *Parser) putBack(t Token) { p.lex.PutBack(t) }

func (p *Parser) expect(k Kind) (Token, bool) {
	t := p.next()
	return t, t.Kind == k
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return p.errorfTok(p.peek(), format, args...)
}

func (p *Parser) errorfTok(t Token, format string, args ...interface{}) error {
	return &ParseError{Tok: t, Msg: fmt.Sprintf(format, args...)}
}

// consumeStatementEnd consumes a trailing ';' if present and reports
// whether one was found.
func (p *Parser) consumeStatementEnd() bool {
	if p.peek().Kind != Semicolon {
		return false
	}
	p.next()
	return true
}

// ParseFile parses a whole source file into a SCOPE node holding every
// top-level statement, stopping at the first error or at EOF.
func (p *Parser) ParseFile() (*ScopeNode, error) {
	file := &ScopeNode{}

	for !p.done {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		if _, isEOF := stmt.(*EOFNode); isEOF {
			break
		}

		file.Children = append(file.Children, stmt)
	}

	return file, nil
}

func (p *Parser) parseStatement() (Node, error) {
	switch t := p.peek(); t.Kind {
	case Identifier:
		return p.parseDeclarationOrAssignment()
	case KwCall:
		return p.parseCallStatement()
	case KwIf:
		return p.parseIfStatement()
	case KwWhile:
		return p.parseWhileStatement()
	case LeftCurly:
		return p.parseScope()
	case LineComment, BlockComment:
		return p.parseComment()
	case EOF:
		tok := p.next()
		p.done = true
		return &EOFNode{base: base{tok: &tok}}, nil
	case Invalid:
		return nil, p.errorfTok(t, "invalid token found")
	default:
		return nil, p.errorfTok(t, "expected the start of a statement, but got '%s'", t.Text)
	}
}

// parseDeclarationOrAssignment handles every statement that begins with an
// identifier: a bare value assignment ('name = expr'), or a type assignment
// ('name : type?') optionally followed by a second ':' (constant) or '='
// (value) to complete the declaration.
func (p *Parser) parseDeclarationOrAssignment() (Node, error) {
	identTok := p.next()
	ident := &IdentifierNode{base: base{tok: &identTok}}

	switch p.peek().Kind {
	case Equals:
		eqTok := p.next()

		value, err := p.parseExpressionBeginning()
		if err != nil {
			return nil, err
		}

		node := &ValueAssignNode{base: base{tok: &eqTok}, Left: ident, Right: value}
		if !p.consumeStatementEnd() {
			return nil, p.errorf("expected end of statement, but got '%s'", p.peek().Text)
		}

		return node, nil

	case Colon:
		typeAssign, err := p.parseTypeAssign(ident)
		if err != nil {
			return nil, err
		}

		switch p.peek().Kind {
		case Colon:
			constTok := p.next()

			value, err := p.parseFunctionOrExpression()
			if err != nil {
				return nil, err
			}

			node := &ConstAssignNode{base: base{tok: &constTok}, Left: typeAssign, Right: value}
			if !p.consumeStatementEnd() {
				return nil, p.errorf("expected end of statement, but got '%s'", p.peek().Text)
			}

			return node, nil

		case Equals:
			eqTok := p.next()

			value, err := p.parseFunctionOrExpression()
			if err != nil {
				return nil, err
			}

			node := &ValueAssignNode{base: base{tok: &eqTok}, Left: typeAssign, Right: value}
			if !p.consumeStatementEnd() {
				return nil, p.errorf("expected end of statement, but got '%s'", p.peek().Text)
			}

			return node, nil

		default:
			return nil, p.errorf("invalid variable declaration, expected a const assignment (':') or a value assignment ('=')")
		}

	default:
		return nil, p.errorf("a declaration must be followed by a value assignment ('=') or type assignment (':')")
	}
}

// parseTypeAssign consumes the ':' and an optional type name; the type is
// nil when the type assign is immediately followed by another ':' or '=',
// meaning the type is to be deduced from the initializer.
func (p *Parser) parseTypeAssign(ident *IdentifierNode) (*TypeAssignNode, error) {
	colonTok := p.next()

	var typeNode Node
	if p.peek().Kind == Identifier {
		t := p.next()
		typeNode = &IdentifierNode{base: base{tok: &t}}
	}

	return &TypeAssignNode{base: base{tok: &colonTok}, Left: ident, Right: typeNode}, nil
}

func (p *Parser) parseCallStatement() (Node, error) {
	callTok := p.next()

	nameTok, ok := p.expect(Identifier)
	if !ok {
		return nil, p.errorfTok(nameTok, "expected a function name after 'call'")
	}
	name := &IdentifierNode{base: base{tok: &nameTok}}

	args, err := p.parseFunctionCallList()
	if err != nil {
		return nil, err
	}

	if !p.consumeStatementEnd() {
		return nil, p.errorf("expected end of statement ';'")
	}

	call := &FunctionCallNode{base: base{tok: &nameTok}, Left: name, Right: args}
	return &CallOperatorNode{base: base{tok: &callTok}, Child: call}, nil
}

// parseIfStatement: the condition is the left child, the then-branch the
// center child, and an optional else-branch the right child.
func (p *Parser) parseIfStatement() (Node, error) {
	ifTok := p.next()

	cond, err := p.parseExpressionBeginning()
	if err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	node := &IfNode{base: base{tok: &ifTok}, Left: cond, Center: then}

	if p.peek().Kind != KwElse {
		return node, nil
	}
	p.next()

	elseBody, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	node.Right = elseBody

	return node, nil
}

// parseWhileStatement: the condition is the left child and the loop body
// the right child.
func (p *Parser) parseWhileStatement() (Node, error) {
	whileTok := p.next()

	cond, err := p.parseExpressionBeginning()
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &WhileNode{base: base{tok: &whileTok}, Left: cond, Right: body}, nil
}

func (p *Parser) parseScope() (Node, error) {
	openTok := p.next() // '{'
	scope := &ScopeNode{base: base{tok: &openTok}}

	for p.peek().Kind != RightCurly && p.peek().Kind != EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		scope.Children = append(scope.Children, stmt)
	}

	closeTok := p.next()
	if closeTok.Kind != RightCurly {
		return nil, p.errorfTok(closeTok, "expected a closing curly brace for the '{' opened at %s", openTok.Loc)
	}

	return scope, nil
}

func (p *Parser) parseComment() (Node, error) {
	tok := p.next()
	return &CommentNode{base: base{tok: &tok}}, nil
}

// parseFunctionOrExpression resolves the declaration-site ambiguity between
// a parenthesized expression and a function literal. It consumes the
// leading '(' to look past it, then puts everything back before
// dispatching to whichever production actually applies, so neither branch
// has to special-case the lookahead.
func (p *Parser) parseFunctionOrExpression() (Node, error) {
	if p.peek().Kind != LeftParen {
		return p.parseExpressionBeginning()
	}

	openTok := p.next()

	after := p.peek()
	if after.Kind == RightParen {
		// Zero-parameter function: "()".
		p.putBack(openTok)
		return p.parseFunctionDeclaration()
	}
	if after.Kind != Identifier {
		p.putBack(openTok)
		return p.parseExpressionBeginning()
	}

	identTok := p.next()
	if p.peek().Kind != Colon {
		p.putBack(identTok)
		p.putBack(openTok)
		return p.parseExpressionBeginning()
	}

	p.putBack(identTok)
	p.putBack(openTok)
	return p.parseFunctionDeclaration()
}

func (p *Parser) parseFunctionDeclaration() (Node, error) {
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}

	retType, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &FunctionDeclNode{base: base{tok: params.tok}, Left: params, Center: retType, Right: body}, nil
}

// parseParameterList parses the declaration-site "(name: type, ...)" list.
func (p *Parser) parseParameterList() (*ParameterListNode, error) {
	openTok, ok := p.expect(LeftParen)
	if !ok {
		return nil, p.errorfTok(openTok, "expected start of function parameter list '('")
	}
	list := &ParameterListNode{base: base{tok: &openTok}}

	for t := p.peek(); t.Kind != RightParen && t.Kind != EOF; t = p.peek() {
		param, err := p.parseFunctionDeclarationParameter()
		if err != nil {
			return nil, err
		}
		list.Children = append(list.Children, param)

		sep := p.next()
		if sep.Kind != Comma && sep.Kind != RightParen {
			return nil, p.errorfTok(sep, "expected comma separated parameters or end of parameter list")
		}
		if sep.Kind == RightParen {
			p.putBack(sep)
		}
	}

	closeTok, ok := p.expect(RightParen)
	if !ok {
		return nil, p.errorfTok(closeTok, "expected closing of function parameter list")
	}

	return list, nil
}

func (p *Parser) parseFunctionDeclarationParameter() (*TypeAssignNode, error) {
	nameTok, ok := p.expect(Identifier)
	if !ok {
		return nil, p.errorfTok(nameTok, "expected a parameter name")
	}
	name := &IdentifierNode{base: base{tok: &nameTok}}

	colonTok, ok := p.expect(Colon)
	if !ok {
		return nil, p.errorfTok(colonTok, "expected a type assignment operator ':'")
	}

	typeTok, ok := p.expect(Identifier)
	if !ok {
		return nil, p.errorfTok(typeTok, "expected a parameter type")
	}
	typ := &IdentifierNode{base: base{tok: &typeTok}}

	return &TypeAssignNode{base: base{tok: &colonTok}, Left: name, Right: typ}, nil
}

func (p *Parser) parseReturnType() (*IdentifierNode, error) {
	arrowTok, ok := p.expect(Arrow)
	if !ok {
		return nil, p.errorfTok(arrowTok, "expected start of function return type '->', but got '%s'", arrowTok.Text)
	}

	typeTok, ok := p.expect(Identifier)
	if !ok {
		return nil, p.errorfTok(typeTok, "expected a function return type, but got '%s'", typeTok.Text)
	}

	return &IdentifierNode{base: base{tok: &typeTok}}, nil
}

// parseFunctionCallList parses the call-site "(expr, ...)" argument list.
func (p *Parser) parseFunctionCallList() (*ParameterListNode, error) {
	openTok, ok := p.expect(LeftParen)
	if !ok {
		return nil, p.errorfTok(openTok, "expected start of function call list")
	}
	list := &ParameterListNode{base: base{tok: &openTok}}

	for p.peek().Kind != RightParen {
		arg, err := p.parseExpressionBeginning()
		if err != nil {
			return nil, err
		}
		list.Children = append(list.Children, arg)

		switch t := p.peek(); t.Kind {
		case RightParen:
		case EOF:
			return nil, p.errorfTok(t, "reached end of file before completing the function call list")
		case Comma:
			p.next()
		default:
			return nil, p.errorfTok(t, "unexpected token in function call list")
		}
	}
	p.next() // ')'

	return list, nil
}

// parseExpressionBeginning parses a primary expression and, transparently,
// whatever chain of binary operators follows it: "expression" and
// "expression beginning" fold into one continuation rather than a separate
// production per precedence tier.
func (p *Parser) parseExpressionBeginning() (Node, error) {
	switch t := p.peek(); t.Kind {
	case LeftParen:
		return p.parseParenExpression()

	case Identifier:
		return p.parseIdentifierExpression()

	case IntegerLiteral:
		tok := p.next()
		v, _ := tok.UintValue()
		return p.continueExpression(&IntLiteralNode{base: base{tok: &tok}, Value: v})

	case FloatLiteral:
		tok := p.next()
		v, _ := tok.FloatValue()
		return p.continueExpression(&FloatLiteralNode{base: base{tok: &tok}, Value: v})

	case StringLiteral:
		tok := p.next()
		return p.continueExpression(&StringLiteralNode{base: base{tok: &tok}})

	default:
		return nil, p.errorfTok(t, "expected the start of an expression, but got '%s'", t.Text)
	}
}

func (p *Parser) parseParenExpression() (Node, error) {
	openTok := p.next() // '('

	inner, err := p.parseExpressionBeginning()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != RightParen {
		return nil, p.errorfTok(p.peek(), "expected a closing parenthesis for the '(' opened at %s", openTok.Loc)
	}
	p.next() // ')'
	inner.SetParens(true)

	return p.continueExpression(inner)
}

func (p *Parser) parseIdentifierExpression() (Node, error) {
	identTok := p.next()
	var expr Node = &IdentifierNode{base: base{tok: &identTok}}

	if p.peek().Kind == LeftParen {
		args, err := p.parseFunctionCallList()
		if err != nil {
			return nil, err
		}
		expr = &FunctionCallNode{base: base{tok: &identTok}, Left: expr, Right: args}
	}

	return p.continueExpression(expr)
}

// continueExpression looks for a trailing binary operator after left. If
// none is found, or the right-hand side fails to parse, that is not an
// error: left is simply returned as the whole expression, mirroring the
// grammar's "an expression is its own continuation" rule.
func (p *Parser) continueExpression(left Node) (Node, error) {
	op, ok := binaryOperatorsByKind[p.peek().Kind]
	if !ok {
		return left, nil
	}

	opTok := p.next()

	right, err := p.parseExpressionBeginning()
	if err != nil {
		p.putBack(opTok)
		return left, nil
	}

	node := &BinaryOpNode{base: base{tok: &opTok}, Op: op, Left: left, Right: right}
	return fixPrecedence(node), nil
}

// fixPrecedence rotates a freshly attached binary operator so a
// lower-precedence root never ends up with a higher-precedence right child
// stolen from beneath a tighter-binding operator, e.g. "1 + 2 * 3" must
// parse as ADD(1, MUL(2, 3)), not MUL(ADD(1, 2), 3). Equal-precedence chains
// rotate too, since every operator is left-associative: "10 - 3 - 2" must
// parse as SUB(SUB(10, 3), 2), not SUB(10, SUB(3, 2)). A right child
// enclosed in its own parens is never rotated away from its root, and a
// root enclosed in parens always rotates its right child up above it.
func fixPrecedence(root *BinaryOpNode) Node {
	rightChild, ok := root.Right.(*BinaryOpNode)
	if !ok {
		return root
	}

	if rightChild.parens {
		return root
	}

	if root.parens || root.Op.precedence() >= rightChild.Op.precedence() {
		root.Right = rightChild.Left
		rightChild.Left = root

		return rightChild
	}

	return root
}
