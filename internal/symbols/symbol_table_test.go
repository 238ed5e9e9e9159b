package symbols

import (
	"testing"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/object"
	"github.com/funvibe/datelang/internal/token"
	"github.com/funvibe/datelang/internal/typesystem"
)

func TestDefineAndFind(t *testing.T) {
	st := NewSymbolTable()
	x := &ast.VariableDef{Token: token.AtLine(3)}

	sym, ok := st.Define("x", VariableSymbol, typesystem.Int, x)
	if !ok || sym.ID != 1 || sym.Line() != 3 {
		t.Fatalf("got %+v, %v", sym, ok)
	}
	if got, ok := st.Find("x"); !ok || got != sym {
		t.Errorf("Find = %+v, %v", got, ok)
	}
	if st.Get(sym.ID) != sym {
		t.Error("Get by handle")
	}

	// Redefinition leaves the first entry in place
	again, ok := st.Define("x", ProcedureSymbol, typesystem.None, &ast.ProcedureDef{Token: token.AtLine(9)})
	if ok || again != sym || st.Len() != 1 {
		t.Errorf("redefinition: %+v, %v, len %d", again, ok, st.Len())
	}

	if _, ok := st.Find("y"); ok {
		t.Error("y is not defined")
	}
	if st.Len() != 1 {
		t.Error("Find must not insert")
	}
	if st.Get(ast.NoSymbol) != nil || st.Get(42) != nil {
		t.Error("Get of an unbound handle")
	}
}

func TestCallableAccessors(t *testing.T) {
	formals := []*ast.FormalArg{{Name: &ast.Identifier{Value: "a"}, TypeName: "int"}}
	locals := []*ast.VariableDef{{Name: &ast.Identifier{Value: "l"}}}

	st := NewSymbolTable()
	p, _ := st.Define("P", ProcedureSymbol, typesystem.None, &ast.ProcedureDef{Formals: formals, Locals: locals})
	f, _ := st.Define("FN", FunctionSymbol, typesystem.Int, &ast.FunctionDef{Formals: formals})
	v, _ := st.Define("v", VariableSymbol, typesystem.Int, &ast.VariableDef{})

	if len(p.Formals()) != 1 || len(p.Locals()) != 1 {
		t.Error("procedure accessors")
	}
	if len(f.Formals()) != 1 || len(f.Locals()) != 0 {
		t.Error("function accessors")
	}
	if v.Formals() != nil || v.Locals() != nil {
		t.Error("variables have no formals or locals")
	}
	if !p.Kind.IsCallable() || !f.Kind.IsCallable() || v.Kind.IsCallable() || FormalArgSymbol.IsCallable() {
		t.Error("IsCallable")
	}
}

func TestSnapshot(t *testing.T) {
	st := NewSymbolTable()
	x, _ := st.Define("x", VariableSymbol, typesystem.Int, &ast.VariableDef{Token: token.AtLine(1)})
	st.Define("d", VariableSymbol, typesystem.Date, &ast.VariableDef{Token: token.AtLine(2)})
	st.Define("a", FormalArgSymbol, typesystem.Int, &ast.FormalArg{Token: token.AtLine(3)})
	x.Value = &object.Integer{Value: 7}

	snap := st.Snapshot()
	want := []SymbolInfo{
		{Name: "x", Kind: "variable", Type: "int", Line: 1, Value: "7", Set: true},
		{Name: "d", Kind: "variable", Type: "date", Line: 2},
		{Name: "a", Kind: "formal-arg", Type: "int", Line: 3},
	}
	if len(snap) != len(want) {
		t.Fatalf("got %d entries", len(snap))
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, snap[i], want[i])
		}
	}

	all := st.All()
	all[0] = nil
	if st.All()[0] == nil {
		t.Error("All must return a copy")
	}
}
