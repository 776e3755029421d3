package rouleaux

// Pipeline drives the three core stages of a compilation unit — Lexer,
// Parser, Resolver — over a single source file, mirroring the teacher's
// Compiler.Compile wiring with code generation and the clang subprocess
// invocation removed.
type Pipeline struct{}

// NewPipeline creates a Pipeline. It holds no state of its own: every field
// a compilation needs lives in the Lexer/Parser/Resolver it constructs per
// call to Compile.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Compile lexes, parses and resolves filename, returning the resolved file
// AST and the symbol table populated along the way. The first lex, parse or
// type error encountered aborts the compilation and is returned directly;
// it implements CompileError so a caller can render it with internal/render.
func (c *Pipeline) Compile(filename string) (*ScopeNode, *SymbolTable, error) {
	lex, err := NewLexerFromFile(filename)
	if err != nil {
		return nil, nil, err
	}

	parser := NewParser(lex)
	file, err := parser.ParseFile()
	if err != nil {
		return nil, nil, err
	}

	resolver := NewResolver()
	if err := resolver.Resolve(file); err != nil {
		return file, resolver.Table(), err
	}

	return file, resolver.Table(), nil
}
