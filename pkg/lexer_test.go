package rouleaux

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.rouleaux.dev/internal/test"
)

func TestLexer(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		errored bool
		expect  []Kind
	}{
		{
			"keywords and punctuation",
			"if x { while y { call z(); } }",
			false,
			[]Kind{KwIf, Identifier, LeftCurly, KwWhile, Identifier, LeftCurly, KwCall, Identifier, LeftParen, RightParen, Semicolon, RightCurly, RightCurly, EOF},
		},
		{
			"arrow fusion",
			"->",
			false,
			[]Kind{Arrow, EOF},
		},
		{
			"minus then greater-than is not an arrow",
			"- >",
			false,
			[]Kind{Minus, GreaterThan, EOF},
		},
		{
			"line comment excludes the newline",
			"// a comment\nx",
			false,
			[]Kind{LineComment, Identifier, EOF},
		},
		{
			"block comment",
			"/* over\ntwo lines */ x",
			false,
			[]Kind{BlockComment, Identifier, EOF},
		},
		{
			"integer and float literals",
			"1 2.5",
			false,
			[]Kind{IntegerLiteral, FloatLiteral, EOF},
		},
		{
			"string literal",
			`"hi"`,
			false,
			[]Kind{StringLiteral, EOF},
		},
		{
			"unterminated string is an error",
			`"hi`,
			true,
			[]Kind{Invalid, EOF},
		},
		{
			"unterminated block comment is an error",
			"/* hi",
			true,
			[]Kind{Invalid, EOF},
		},
		{
			"unrecognized byte is an error",
			"\x01",
			true,
			[]Kind{Invalid, EOF},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewLexer("t.rlx", c.data)

			var got []Kind
			for {
				tok := l.Next()
				got = append(got, tok.Kind)
				if tok.Kind == EOF {
					break
				}
			}

			assert.Equal(t, c.expect, got)
			assert.Equal(t, c.errored, l.Errored())
		})
	}
}

func TestLexerPeekNextEquivalence(t *testing.T) {
	l := NewLexer("t.rlx", "x = 1 + 2;")

	for i := 0; i < 5; i++ {
		peeked := l.Peek()
		next := l.Next()
		assert.Equal(t, peeked, next)
	}
}

func TestLexerPutBackInvolution(t *testing.T) {
	l := NewLexer("t.rlx", "x = 1;")

	first := l.Next()
	l.PutBack(first)
	assert.Equal(t, first, l.Next())
}

func TestLexerPutBackReverseOrder(t *testing.T) {
	l := NewLexer("t.rlx", "a b c")

	a := l.Next()
	b := l.Next()

	l.PutBack(b)
	l.PutBack(a)

	assert.Equal(t, a, l.Next())
	assert.Equal(t, b, l.Next())
}

func TestLexerTotality(t *testing.T) {
	l := NewLexer("t.rlx", "x")

	assert.Equal(t, Identifier, l.Next().Kind)

	for i := 0; i < 3; i++ {
		tok := l.Next()
		assert.Equal(t, EOF, tok.Kind)
	}
}

// Use a package-level variable to avoid compiler optimisation.
var benchResult Token

func benchmarkLexer(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		data := test.GetRandomTokens(size)
		l := NewLexer("bench.rlx", data)
		b.StartTimer()

		for {
			benchResult = l.Next()
			if benchResult.Kind == EOF {
				break
			}
		}
	}
}

func BenchmarkLexer100(b *testing.B)     { benchmarkLexer(100, b) }
func BenchmarkLexer1000(b *testing.B)    { benchmarkLexer(1000, b) }
func BenchmarkLexer10000(b *testing.B)   { benchmarkLexer(10000, b) }
func BenchmarkLexer100000(b *testing.B)  { benchmarkLexer(100000, b) }
func BenchmarkLexer1000000(b *testing.B) { benchmarkLexer(1000000, b) }
