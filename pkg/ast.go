package rouleaux

// NodeKind identifies the syntactic category of a Node and, together with
// the table in spec.md §4.2.2, fixes the node's child shape: leaf, unary,
// binary, ternary or many. Each concrete Node type below implements exactly
// one shape, so there is no way to read the wrong arm of a union.
type NodeKind int

const (
	NInvalid NodeKind = iota

	NIdentifier
	NIntLiteral
	NFloatLiteral
	NStringLiteral
	NComment
	NStmtEnd
	NEOF

	NCallOperator

	NBinaryOp
	NValueAssign
	NTypeAssign
	NConstAssign
	NWhile
	NFunctionCall

	NIf
	NFunctionDecl

	NScope
	NParameterList
)

func (k NodeKind) String() string {
	switch k {
	case NInvalid:
		return "INVALID"
	case NIdentifier:
		return "IDENTIFIER"
	case NIntLiteral:
		return "INT"
	case NFloatLiteral:
		return "FLOAT"
	case NStringLiteral:
		return "STRING"
	case NComment:
		return "COMMENT"
	case NStmtEnd:
		return "STMT_END"
	case NEOF:
		return "EOF"
	case NCallOperator:
		return "CALL_OPERATOR"
	case NBinaryOp:
		return "BINOP"
	case NValueAssign:
		return "VALUE_ASSIGN"
	case NTypeAssign:
		return "TYPE_ASSIGN"
	case NConstAssign:
		return "CONST_ASSIGN"
	case NWhile:
		return "WHILE"
	case NFunctionCall:
		return "FUNCTION_CALL"
	case NIf:
		return "IF"
	case NFunctionDecl:
		return "FUNCTION_DECLARATION"
	case NScope:
		return "SCOPE"
	case NParameterList:
		return "PARAMETER_LIST"
	}

	return "UNKNOWN"
}

// BinaryOperator enumerates the operators a BinaryOpNode may carry.
type BinaryOperator int

const (
	OpAdd BinaryOperator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLess
	OpGreater
)

// precedence returns the binding strength of op; higher binds tighter. See
// spec.md §4.2.3.
func (op BinaryOperator) precedence() int {
	switch op {
	case OpLess, OpGreater:
		return 1
	case OpAdd, OpSub:
		return 2
	case OpMul, OpDiv, OpMod:
		return 3
	}

	return -1
}

func (op BinaryOperator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	}

	return "?"
}

var binaryOperatorsByKind = map[Kind]BinaryOperator{
	Plus:         OpAdd,
	Minus:        OpSub,
	Asterisk:     OpMul,
	ForwardSlash: OpDiv,
	Percent:      OpMod,
	LessThan:     OpLess,
	GreaterThan:  OpGreater,
}

// Node is implemented by every AST node. It exposes just enough surface for
// generic traversal (resolver, precedence rotation); each concrete type
// otherwise exposes its own typed children directly.
type Node interface {
	Kind() NodeKind
	Tok() *Token
	Parens() bool
	SetParens(bool)
}

// base is embedded by every concrete node and supplies the fields common to
// all shapes: the defining token and the enclosed-in-parens flag.
type base struct {
	tok    *Token
	parens bool
}

func (b *base) Tok() *Token      { return b.tok }
func (b *base) Parens() bool     { return b.parens }
func (b *base) SetParens(v bool) { b.parens = v }

// --- leaf nodes (0 children) ---

type IdentifierNode struct{ base }

func (n *IdentifierNode) Kind() NodeKind { return NIdentifier }
func (n *IdentifierNode) Name() string   { return n.tok.Text }

type IntLiteralNode struct {
	base
	Value uint64
}

func (n *IntLiteralNode) Kind() NodeKind { return NIntLiteral }

type FloatLiteralNode struct {
	base
	Value float64
}

func (n *FloatLiteralNode) Kind() NodeKind { return NFloatLiteral }

type StringLiteralNode struct{ base }

func (n *StringLiteralNode) Kind() NodeKind { return NStringLiteral }

type CommentNode struct{ base }

func (n *CommentNode) Kind() NodeKind { return NComment }

type StmtEndNode struct{ base }

func (n *StmtEndNode) Kind() NodeKind { return NStmtEnd }

type EOFNode struct{ base }

func (n *EOFNode) Kind() NodeKind { return NEOF }

// --- unary nodes (1 child) ---

// CallOperatorNode is the node produced by the 'call' keyword; it is
// transparent during resolution and wraps a FunctionCallNode.
type CallOperatorNode struct {
	base
	Child Node
}

func (n *CallOperatorNode) Kind() NodeKind { return NCallOperator }

// --- binary nodes (2 children: left/right) ---

type BinaryOpNode struct {
	base
	Op          BinaryOperator
	Left, Right Node
}

func (n *BinaryOpNode) Kind() NodeKind { return NBinaryOp }

// ValueAssignNode is `name = expr`. Left is an *IdentifierNode or
// *TypeAssignNode (when declaring and assigning in one step), Right is the
// initializer expression.
type ValueAssignNode struct {
	base
	Left, Right Node
}

func (n *ValueAssignNode) Kind() NodeKind { return NValueAssign }

// TypeAssignNode is `name : type?`. Left is an *IdentifierNode, Right is an
// *IdentifierNode naming the type, or nil when the type is to be deduced.
type TypeAssignNode struct {
	base
	Left, Right Node
}

func (n *TypeAssignNode) Kind() NodeKind { return NTypeAssign }

// ConstAssignNode is `name : type? : expr`. Left is always a
// *TypeAssignNode, Right is the initializer expression.
type ConstAssignNode struct {
	base
	Left, Right Node
}

func (n *ConstAssignNode) Kind() NodeKind { return NConstAssign }

// WhileNode: Left = condition, Right = body.
type WhileNode struct {
	base
	Left, Right Node
}

func (n *WhileNode) Kind() NodeKind { return NWhile }

// FunctionCallNode: Left = callee *IdentifierNode, Right = *ParameterListNode
// of argument expressions.
type FunctionCallNode struct {
	base
	Left, Right Node
}

func (n *FunctionCallNode) Kind() NodeKind { return NFunctionCall }

// --- ternary nodes (3 children: left/center/right) ---

// IfNode: Left = condition, Center = then-statement, Right = else-statement
// or nil.
type IfNode struct {
	base
	Left, Center, Right Node
}

func (n *IfNode) Kind() NodeKind { return NIf }

// FunctionDeclNode: Left = *ParameterListNode, Center = return-type
// *IdentifierNode, Right = body statement (typically a *ScopeNode).
type FunctionDeclNode struct {
	base
	Left, Center, Right Node
}

func (n *FunctionDeclNode) Kind() NodeKind { return NFunctionDecl }

// --- many nodes (dynamic ordered children) ---

type ScopeNode struct {
	base
	Children []Node
}

func (n *ScopeNode) Kind() NodeKind { return NScope }

// ParameterListNode holds either declaration parameters (name: type pairs,
// encoded as TypeAssignNode children) or call arguments (expressions),
// depending on context.
type ParameterListNode struct {
	base
	Children []Node
}

func (n *ParameterListNode) Kind() NodeKind { return NParameterList }
