package rouleaux

import "fmt"

// CompileError is implemented by every lexical, syntactic and type error
// this module produces. Token returns the offending token so a renderer
// (internal/render) can decorate the message with the source line and a
// caret underline, per spec.md §6.
type CompileError interface {
	error
	Token() Token
}

// ParseError is the discriminated failure arm of every parser production:
// spec.md §4.2.5 "a result value carrying either the produced subtree or an
// error record { offending token, formatted message }". Every production in
// parser.go that fails returns one instead of a partial Node; Go's garbage
// collector reclaims whatever partial nodes were already built, which is
// the idiomatic equivalent of the original's explicit node-tree teardown.
type ParseError struct {
	Tok Token
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }
func (e *ParseError) Token() Token  { return e.Tok }

// UndeclaredSymbolError: an identifier was used before it was declared.
type UndeclaredSymbolError struct {
	Tok Token
}

func (e *UndeclaredSymbolError) Error() string {
	return fmt.Sprintf("Undeclared symbol '%s'", e.Tok.Text)
}
func (e *UndeclaredSymbolError) Token() Token { return e.Tok }

// RedeclaredSymbolError: a name was declared twice in the same scope.
type RedeclaredSymbolError struct {
	Tok         Token
	OriginalTok Token
}

func (e *RedeclaredSymbolError) Error() string {
	return fmt.Sprintf("'%s' is already declared, first declared at %s", e.Tok.Text, e.OriginalTok.Loc)
}
func (e *RedeclaredSymbolError) Token() Token { return e.Tok }

// TypeMismatchError: the two operands/sides of an operation did not agree.
type TypeMismatchError struct {
	Tok         Token
	Left, Right TypeTag
}

func (e *TypeMismatchError) Error() string {
	return "Left and right operand types do not match"
}
func (e *TypeMismatchError) Token() Token { return e.Tok }

// ConstAssignmentError: an attempt to assign to a constant binding.
type ConstAssignmentError struct {
	Tok Token
}

func (e *ConstAssignmentError) Error() string {
	return fmt.Sprintf("cannot assign to '%s': it was declared as a constant", e.Tok.Text)
}
func (e *ConstAssignmentError) Token() Token { return e.Tok }

// ArityError: a call supplied the wrong number of arguments.
type ArityError struct {
	Tok        Token
	Want, Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("'%s' expects %d argument(s), got %d", e.Tok.Text, e.Want, e.Got)
}
func (e *ArityError) Token() Token { return e.Tok }

// ArgumentTypeError: a call argument's type didn't match the formal
// parameter's declared type.
type ArgumentTypeError struct {
	Tok        Token
	Index      int
	Want, Got TypeTag
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("argument %d of '%s' has type %s, expected %s", e.Index+1, e.Tok.Text, e.Got, e.Want)
}
func (e *ArgumentTypeError) Token() Token { return e.Tok }

// NotAFunctionError: a call was made against a non-function symbol.
type NotAFunctionError struct {
	Tok Token
}

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("'%s' is not a function", e.Tok.Text)
}
func (e *NotAFunctionError) Token() Token { return e.Tok }
