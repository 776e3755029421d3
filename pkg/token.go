package rouleaux

import "fmt"

// Kind identifies the lexical category of a Token. Values below IDENTIFIER
// and the handful above TILDE are fixed points of the grammar; every ASCII
// punctuation byte between them is its own token whose Kind equals its
// ASCII code, so the numbering below must not be reordered.
type Kind uint16

const (
	// Invalid is emitted when the lexer cannot make sense of a byte, or when
	// a string or comment is left unterminated at end of input.
	Invalid Kind = 0

	KwFor Kind = iota
	KwWhile
	KwDo
	KwIf
	KwElse
	KwNull
	KwCall

	Identifier

	// Single-character punctuation tokens occupy the range of their own
	// ASCII code (e.g. Plus == Kind('+')), so they are not declared as
	// sequential iota constants. Arrow is the first token kind above '~'.
	Arrow Kind = '~' + 1

	IntegerLiteral Kind = '~' + 2
	FloatLiteral   Kind = '~' + 3
	StringLiteral  Kind = '~' + 4

	LineComment Kind = '~' + 5
	BlockComment Kind = '~' + 6

	EOF Kind = '~' + 7
)

// Single-character punctuation kinds, named for readability at call sites.
// Their numeric values equal the ASCII code of the character they denote,
// per the layout fixed above.
const (
	Bang             = Kind('!')
	DoubleQuote      = Kind('"')
	Pound            = Kind('#')
	Dollar           = Kind('$')
	Percent          = Kind('%')
	Ampersand        = Kind('&')
	SingleQuote      = Kind('\'')
	LeftParen        = Kind('(')
	RightParen       = Kind(')')
	Asterisk         = Kind('*')
	Plus             = Kind('+')
	Comma            = Kind(',')
	Minus            = Kind('-')
	Period           = Kind('.')
	ForwardSlash     = Kind('/')
	Colon            = Kind(':')
	Semicolon        = Kind(';')
	LessThan         = Kind('<')
	Equals           = Kind('=')
	GreaterThan      = Kind('>')
	QuestionMark     = Kind('?')
	AtSign           = Kind('@')
	LeftBracket      = Kind('[')
	BackSlash        = Kind('\\')
	RightBracket     = Kind(']')
	Caret            = Kind('^')
	Underscore       = Kind('_')
	Grave            = Kind('`')
	LeftCurly        = Kind('{')
	VerticalBar      = Kind('|')
	RightCurly       = Kind('}')
	Tilde            = Kind('~')
)

// keywords maps reserved identifier text to its keyword Kind. for, do and
// null are reserved by the grammar but, per spec.md §9, no production ever
// consumes them.
var keywords = map[string]Kind{
	"for":   KwFor,
	"while": KwWhile,
	"do":    KwDo,
	"if":    KwIf,
	"else":  KwElse,
	"null":  KwNull,
	"call":  KwCall,
}

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "INVALID"
	case KwFor:
		return "for"
	case KwWhile:
		return "while"
	case KwDo:
		return "do"
	case KwIf:
		return "if"
	case KwElse:
		return "else"
	case KwNull:
		return "null"
	case KwCall:
		return "call"
	case Identifier:
		return "IDENTIFIER"
	case Arrow:
		return "->"
	case IntegerLiteral:
		return "INTEGER_LITERAL"
	case FloatLiteral:
		return "FLOAT_LITERAL"
	case StringLiteral:
		return "STRING_LITERAL"
	case LineComment:
		return "LINE_COMMENT"
	case BlockComment:
		return "BLOCK_COMMENT"
	case EOF:
		return "EOF"
	}

	if k >= '!' && k <= '~' {
		return string(rune(k))
	}

	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// Location records where a token's first byte sits in its source file. Row
// and Col are 1-based.
type Location struct {
	File string
	Row  uint64
	Col  uint64
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Row, l.Col)
}

// literalKind tags which arm of Token.value is populated, if any.
type literalKind uint8

const (
	noLiteral literalKind = iota
	uintLiteral
	floatLiteral
)

// Token is a value object: the lexer and parser copy it freely. Text is a
// slice of the source buffer string and shares its backing array, so it
// stays valid exactly as long as the source string does, and never costs a
// copy to produce.
type Token struct {
	Kind Kind
	Text string
	Loc  Location

	literal  literalKind
	uintVal  uint64
	floatVal float64

	// ResolvedType is populated by the type resolver; Unknown until then.
	ResolvedType TypeTag
}

// UintValue returns the parsed value of an IntegerLiteral token.
func (t Token) UintValue() (uint64, bool) {
	if t.literal != uintLiteral {
		return 0, false
	}

	return t.uintVal, true
}

// FloatValue returns the parsed value of a FloatLiteral token.
func (t Token) FloatValue() (float64, bool) {
	if t.literal != floatLiteral {
		return 0, false
	}

	return t.floatVal, true
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @ %s", t.Kind, t.Text, t.Loc)
}
