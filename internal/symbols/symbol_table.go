package symbols

import (
	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/typesystem"
)

// SymbolTable is the flat, name-keyed table of one run. Entries live in an
// arena and are addressed by ast.SymbolID; they never move or disappear once
// defined.
type SymbolTable struct {
	arena []*Symbol // arena[0] is the unbound sentinel
	index map[string]ast.SymbolID
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		arena: []*Symbol{nil},
		index: make(map[string]ast.SymbolID),
	}
}

// Define registers name. If the name is already taken the existing entry is
// returned with ok=false and the table is left unchanged.
func (st *SymbolTable) Define(name string, kind SymbolKind, t typesystem.Type, node ast.Node) (sym *Symbol, ok bool) {
	if id, exists := st.index[name]; exists {
		return st.arena[id], false
	}
	sym = &Symbol{
		ID:             ast.SymbolID(len(st.arena)),
		Name:           name,
		Kind:           kind,
		Type:           t,
		DefinitionNode: node,
	}
	st.arena = append(st.arena, sym)
	st.index[name] = sym.ID
	return sym, true
}

// Find looks a name up. It never inserts.
func (st *SymbolTable) Find(name string) (*Symbol, bool) {
	id, ok := st.index[name]
	if !ok {
		return nil, false
	}
	return st.arena[id], true
}

// Get returns the entry for a handle, or nil for NoSymbol and unknown handles.
func (st *SymbolTable) Get(id ast.SymbolID) *Symbol {
	if id <= ast.NoSymbol || int(id) >= len(st.arena) {
		return nil
	}
	return st.arena[id]
}

// Len is the number of entries.
func (st *SymbolTable) Len() int {
	return len(st.arena) - 1
}

// All returns the entries in definition order.
func (st *SymbolTable) All() []*Symbol {
	out := make([]*Symbol, 0, st.Len())
	out = append(out, st.arena[1:]...)
	return out
}

// SymbolInfo is the read-only introspection view of one entry.
type SymbolInfo struct {
	Name  string
	Kind  string
	Type  string
	Line  int
	Value string // Inspect() of the last value, empty when unset
	Set   bool
}

// Snapshot captures every entry's name, kind, type and current value.
func (st *SymbolTable) Snapshot() []SymbolInfo {
	out := make([]SymbolInfo, 0, st.Len())
	for _, sym := range st.All() {
		info := SymbolInfo{
			Name: sym.Name,
			Kind: sym.Kind.String(),
			Type: sym.Type.String(),
			Line: sym.Line(),
		}
		if sym.Value != nil {
			info.Value = sym.Value.Inspect()
			info.Set = true
		}
		out = append(out, info)
	}
	return out
}
