package rouleaux

// TypeTag is the result of resolving an expression-bearing token or node.
type TypeTag int

const (
	Unknown TypeTag = iota
	Integer
	Float
	String
	Function
)

func (t TypeTag) String() string {
	switch t {
	case Integer:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Function:
		return "function"
	}

	return "unknown"
}

// Symbol is a declared name. FuncDecl is only populated when Type is
// Function; it is a non-owning back-reference into the AST used to look up
// the formal parameter list and return type at call sites.
type Symbol struct {
	Name       string
	Tok        Token
	Type       TypeTag
	IsConstant bool
	FuncDecl   *FunctionDeclNode
}

// SymbolTable is a single flat scope: every symbol lives in one map, keyed
// by identifier text. Per the Design Notes, a hash map replaces the
// original's linear-scan dynamic array, and insertion order is preserved
// separately and returned by Names; the CLI itself prints only Len. Once
// added, a symbol
// is never removed, and is mutated only to attach a function's
// back-reference once its declaration has been parsed.
type SymbolTable struct {
	entries map[string]*Symbol
	order   []string
}

// NewSymbolTable creates a table pre-populated with the int and float
// built-in type symbols, per spec.md §3.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{entries: make(map[string]*Symbol)}
	st.insert(&Symbol{Name: "int", Type: Integer})
	st.insert(&Symbol{Name: "float", Type: Float})

	return st
}

func (st *SymbolTable) insert(sym *Symbol) {
	st.entries[sym.Name] = sym
	st.order = append(st.order, sym.Name)
}

// Add inserts a new symbol. The caller must check Lookup first: Add does
// not itself reject a duplicate name, since the resolver needs the original
// declaration's token to report "already declared here".
func (st *SymbolTable) Add(name string, tok Token, typ TypeTag, isConstant bool) *Symbol {
	sym := &Symbol{Name: name, Tok: tok, Type: typ, IsConstant: isConstant}
	st.insert(sym)

	return sym
}

// Lookup returns the symbol named name, or nil if it isn't declared.
func (st *SymbolTable) Lookup(name string) *Symbol {
	return st.entries[name]
}

// Len returns the number of symbols in the table, including built-ins.
func (st *SymbolTable) Len() int {
	return len(st.order)
}

// Names returns every declared name in insertion order.
func (st *SymbolTable) Names() []string {
	names := make([]string, len(st.order))
	copy(names, st.order)

	return names
}
