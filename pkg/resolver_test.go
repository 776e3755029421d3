package rouleaux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAndResolve(t *testing.T, src string) (*SymbolTable, error) {
	t.Helper()

	lex := NewLexer("t.rlx", src)
	p := NewParser(lex)
	file, err := p.ParseFile()
	require.NoError(t, err)

	r := NewResolver()
	err = r.Resolve(file)
	return r.Table(), err
}

func TestResolverEndToEndScenarios(t *testing.T) {
	t.Run("scenario 1: declared int with explicit type", func(t *testing.T) {
		table, err := parseAndResolve(t, "x : int = 3 + 4 * 2;")
		require.NoError(t, err)

		sym := table.Lookup("x")
		require.NotNil(t, sym)
		assert.Equal(t, Integer, sym.Type)
		assert.False(t, sym.IsConstant)
		assert.Equal(t, 3, table.Len())
	})

	t.Run("scenario 2: const with deduced type", func(t *testing.T) {
		table, err := parseAndResolve(t, "y :: 1 + 2;")
		require.NoError(t, err)

		sym := table.Lookup("y")
		require.NotNil(t, sym)
		assert.Equal(t, Integer, sym.Type)
		assert.True(t, sym.IsConstant)
	})

	t.Run("scenario 3: parenthesized subexpression resolves to int", func(t *testing.T) {
		lex := NewLexer("t.rlx", "(1 + 2) * 3;")
		p := NewParser(lex)
		expr, err := p.parseExpressionBeginning()
		require.NoError(t, err)

		r := NewResolver()
		typ, err := r.resolveExpr(expr)
		require.NoError(t, err)
		assert.Equal(t, Integer, typ)
	})

	t.Run("scenario 4: function declaration and call resolve", func(t *testing.T) {
		table, err := parseAndResolve(t, "add :: (a: int, b: int) -> int { x : int = a + b; }; call add(1, 2);")
		require.NoError(t, err)

		sym := table.Lookup("add")
		require.NotNil(t, sym)
		assert.Equal(t, Function, sym.Type)
		assert.NotNil(t, sym.FuncDecl)
	})

	t.Run("scenario 5: assignment to an undeclared symbol fails", func(t *testing.T) {
		_, err := parseAndResolve(t, "x = 1;")
		require.Error(t, err)

		var undeclared *UndeclaredSymbolError
		require.ErrorAs(t, err, &undeclared)
		assert.Equal(t, uint64(1), undeclared.Tok.Loc.Col)
	})
}

func TestResolverConstAssignmentIsRejected(t *testing.T) {
	_, err := parseAndResolve(t, "y :: 1; y = 2;")
	require.Error(t, err)

	var constErr *ConstAssignmentError
	assert.ErrorAs(t, err, &constErr)
}

func TestResolverRedeclarationIsRejected(t *testing.T) {
	_, err := parseAndResolve(t, "x : int = 1; x : int = 2;")
	require.Error(t, err)

	var redeclared *RedeclaredSymbolError
	require.ErrorAs(t, err, &redeclared)
}

func TestResolverTypeMismatchIsRejected(t *testing.T) {
	_, err := parseAndResolve(t, `x : int = "nope";`)
	require.Error(t, err)

	var mismatch *TypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestResolverRightBeforeLeftOrdering(t *testing.T) {
	// "x :: x + 1;" must fail on the right side's reference to x before the
	// left side ever gets a chance to declare it.
	_, err := parseAndResolve(t, "x :: x + 1;")
	require.Error(t, err)

	var undeclared *UndeclaredSymbolError
	require.ErrorAs(t, err, &undeclared)
	assert.Equal(t, "x", undeclared.Tok.Text)
}

func TestResolverArityMismatch(t *testing.T) {
	_, err := parseAndResolve(t, "add :: (a: int, b: int) -> int { x : int = a + b; }; call add(1);")
	require.Error(t, err)

	var arity *ArityError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, 2, arity.Want)
	assert.Equal(t, 1, arity.Got)
}

func TestResolverArgumentTypeMismatch(t *testing.T) {
	_, err := parseAndResolve(t, `add :: (a: int, b: int) -> int { x : int = a + b; }; call add(1, "two");`)
	require.Error(t, err)

	var argErr *ArgumentTypeError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, 1, argErr.Index)
}

func TestResolverCallOnNonFunctionFails(t *testing.T) {
	_, err := parseAndResolve(t, "x : int = 1; call x();")
	require.Error(t, err)

	var notAFunc *NotAFunctionError
	assert.ErrorAs(t, err, &notAFunc)
}

func TestResolverIfAndWhileConditionsAreResolved(t *testing.T) {
	table, err := parseAndResolve(t, "flag : int = 1; if flag { y : int = 2; } while flag { z : int = 3; }")
	require.NoError(t, err)

	assert.NotNil(t, table.Lookup("flag"))
	assert.NotNil(t, table.Lookup("y"))
	assert.NotNil(t, table.Lookup("z"))
}
