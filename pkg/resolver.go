package rouleaux

// Resolver walks a parsed file, assigning a resolved type to every
// expression-bearing token and populating a single flat symbol table. It
// reports the first type error encountered and stops there: no attempt at
// recovery is made, matching the parser's own all-or-nothing propagation.
type Resolver struct {
	table *SymbolTable
}

// NewResolver creates a Resolver with a fresh symbol table (int/float
// built-ins only).
func NewResolver() *Resolver {
	return &Resolver{table: NewSymbolTable()}
}

// Table returns the symbol table being populated.
func (r *Resolver) Table() *SymbolTable { return r.table }

// Resolve type-checks every statement in file, in source order.
func (r *Resolver) Resolve(file *ScopeNode) error {
	return r.resolveScope(file)
}

func (r *Resolver) resolveScope(s *ScopeNode) error {
	for _, child := range s.Children {
		if err := r.resolveStatement(child); err != nil {
			return err
		}
	}

	return nil
}

func (r *Resolver) resolveStatement(n Node) error {
	switch stmt := n.(type) {
	case *ValueAssignNode:
		_, err := r.resolveAssign(stmt.Left, stmt.Right, false)
		return err

	case *ConstAssignNode:
		_, err := r.resolveAssign(stmt.Left, stmt.Right, true)
		return err

	case *IfNode:
		if _, err := r.resolveExpr(stmt.Left); err != nil {
			return err
		}
		if err := r.resolveStatement(stmt.Center); err != nil {
			return err
		}
		if stmt.Right == nil {
			return nil
		}
		return r.resolveStatement(stmt.Right)

	case *WhileNode:
		if _, err := r.resolveExpr(stmt.Left); err != nil {
			return err
		}
		return r.resolveStatement(stmt.Right)

	case *ScopeNode:
		return r.resolveScope(stmt)

	case *CallOperatorNode:
		_, err := r.resolveExpr(stmt.Child)
		return err

	case *CommentNode, *StmtEndNode, *EOFNode:
		return nil

	default:
		_, err := r.resolveExpr(n)
		return err
	}
}

// resolveExpr assigns and returns the type of an expression-bearing node,
// per the per-kind rules.
func (r *Resolver) resolveExpr(n Node) (TypeTag, error) {
	switch e := n.(type) {
	case *IntLiteralNode:
		e.tok.ResolvedType = Integer
		return Integer, nil

	case *FloatLiteralNode:
		e.tok.ResolvedType = Float
		return Float, nil

	case *StringLiteralNode:
		e.tok.ResolvedType = String
		return String, nil

	case *IdentifierNode:
		sym := r.table.Lookup(e.Name())
		if sym == nil {
			return Unknown, &UndeclaredSymbolError{Tok: *e.tok}
		}
		e.tok.ResolvedType = sym.Type
		return sym.Type, nil

	case *BinaryOpNode:
		left, err := r.resolveExpr(e.Left)
		if err != nil {
			return Unknown, err
		}
		right, err := r.resolveExpr(e.Right)
		if err != nil {
			return Unknown, err
		}
		if left != right {
			return Unknown, &TypeMismatchError{Tok: *e.tok, Left: left, Right: right}
		}
		e.tok.ResolvedType = left
		return left, nil

	case *FunctionCallNode:
		return r.resolveCall(e)

	case *FunctionDeclNode:
		return r.resolveFunctionDecl(e)

	case *ParameterListNode:
		for _, c := range e.Children {
			if _, err := r.resolveExpr(c); err != nil {
				return Unknown, err
			}
		}
		return Unknown, nil

	case *TypeAssignNode:
		return r.resolveParameter(e)

	case *CommentNode, *StmtEndNode, *EOFNode:
		return Unknown, nil

	default:
		return Unknown, nil
	}
}

// resolveParameter handles a standalone TYPE_ASSIGN, i.e. a function
// parameter ("name: type"): the type name is looked up, the parameter name
// must not already be declared, and it is added to the table as
// non-constant.
func (r *Resolver) resolveParameter(ta *TypeAssignNode) (TypeTag, error) {
	ident := ta.Left.(*IdentifierNode)

	if ta.Right == nil {
		return Unknown, nil
	}

	typ, err := r.resolveTypeName(ta.Right.(*IdentifierNode))
	if err != nil {
		return Unknown, err
	}

	if existing := r.table.Lookup(ident.Name()); existing != nil {
		return Unknown, &RedeclaredSymbolError{Tok: *ident.tok, OriginalTok: existing.Tok}
	}

	r.table.Add(ident.Name(), *ident.tok, typ, false)
	ident.tok.ResolvedType = typ

	return typ, nil
}

// resolveTypeName looks up a type-name identifier ("int", "float") in the
// symbol table.
func (r *Resolver) resolveTypeName(ident *IdentifierNode) (TypeTag, error) {
	sym := r.table.Lookup(ident.Name())
	if sym == nil {
		return Unknown, &UndeclaredSymbolError{Tok: *ident.tok}
	}
	return sym.Type, nil
}

// resolveAssign implements VALUE_ASSIGN and CONST_ASSIGN: the right-hand
// side is always resolved before the left, so a self-referential
// initializer surfaces as an undeclared-symbol error rather than succeeding
// or mismatching.
func (r *Resolver) resolveAssign(left, right Node, isConst bool) (TypeTag, error) {
	rightType, err := r.resolveExpr(right)
	if err != nil {
		return Unknown, err
	}

	// A function's back-reference must also carry through a declared alias
	// ("g :: add"), not just a direct function-literal initializer, so a
	// call through the alias can still find the formal parameters. A bare
	// "g = add" to an existing name leaves that name's back-reference as is.
	var fn *FunctionDeclNode
	switch rhs := right.(type) {
	case *FunctionDeclNode:
		fn = rhs
	case *IdentifierNode:
		if sym := r.table.Lookup(rhs.Name()); sym != nil {
			fn = sym.FuncDecl
		}
	}

	switch l := left.(type) {
	case *IdentifierNode:
		// Bare "name = expr": an assignment to an already-declared name.
		sym := r.table.Lookup(l.Name())
		if sym == nil {
			return Unknown, &UndeclaredSymbolError{Tok: *l.tok}
		}
		if sym.IsConstant {
			return Unknown, &ConstAssignmentError{Tok: *l.tok}
		}
		if sym.Type != rightType {
			return Unknown, &TypeMismatchError{Tok: *l.tok, Left: sym.Type, Right: rightType}
		}

		l.tok.ResolvedType = sym.Type
		return sym.Type, nil

	case *TypeAssignNode:
		ident := l.Left.(*IdentifierNode)

		declaredType := rightType
		if l.Right != nil {
			declaredType, err = r.resolveTypeName(l.Right.(*IdentifierNode))
			if err != nil {
				return Unknown, err
			}
			if declaredType != rightType {
				return Unknown, &TypeMismatchError{Tok: *ident.tok, Left: declaredType, Right: rightType}
			}
		}

		if existing := r.table.Lookup(ident.Name()); existing != nil {
			return Unknown, &RedeclaredSymbolError{Tok: *ident.tok, OriginalTok: existing.Tok}
		}

		sym := r.table.Add(ident.Name(), *ident.tok, declaredType, isConst)
		sym.FuncDecl = fn
		ident.tok.ResolvedType = declaredType

		return declaredType, nil
	}

	return Unknown, nil
}

// resolveFunctionDecl resolves parameters (adding each to the table), then
// the return type, then the body; the node itself always types to FUNCTION.
func (r *Resolver) resolveFunctionDecl(fd *FunctionDeclNode) (TypeTag, error) {
	params := fd.Left.(*ParameterListNode)
	for _, p := range params.Children {
		if _, err := r.resolveExpr(p); err != nil {
			return Unknown, err
		}
	}

	if _, err := r.resolveTypeName(fd.Center.(*IdentifierNode)); err != nil {
		return Unknown, err
	}

	if err := r.resolveStatement(fd.Right); err != nil {
		return Unknown, err
	}

	return Function, nil
}

// resolveCall resolves a FUNCTION_CALL: the callee must be a FUNCTION
// symbol; its back-referenced declaration supplies the formal parameters
// checked against the call's argument count and types.
func (r *Resolver) resolveCall(fc *FunctionCallNode) (TypeTag, error) {
	callee, ok := fc.Left.(*IdentifierNode)
	if !ok {
		return Unknown, &NotAFunctionError{Tok: *fc.tok}
	}

	sym := r.table.Lookup(callee.Name())
	if sym == nil {
		return Unknown, &UndeclaredSymbolError{Tok: *callee.tok}
	}
	if sym.Type != Function || sym.FuncDecl == nil {
		return Unknown, &NotAFunctionError{Tok: *callee.tok}
	}

	args := fc.Right.(*ParameterListNode)
	params := sym.FuncDecl.Left.(*ParameterListNode)

	if len(args.Children) != len(params.Children) {
		return Unknown, &ArityError{Tok: *callee.tok, Want: len(params.Children), Got: len(args.Children)}
	}

	for i, argExpr := range args.Children {
		argType, err := r.resolveExpr(argExpr)
		if err != nil {
			return Unknown, err
		}

		paramIdent := params.Children[i].(*TypeAssignNode).Left.(*IdentifierNode)
		paramType := paramIdent.tok.ResolvedType
		if paramType != argType {
			return Unknown, &ArgumentTypeError{Tok: *callee.tok, Index: i, Want: paramType, Got: argType}
		}
	}

	retType, err := r.resolveTypeName(sym.FuncDecl.Center.(*IdentifierNode))
	if err != nil {
		return Unknown, err
	}

	callee.tok.ResolvedType = retType
	return retType, nil
}
