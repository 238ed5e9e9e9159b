package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/config"
	"github.com/funvibe/datelang/internal/diagnostics"
	"github.com/funvibe/datelang/internal/token"
)

func TestGoldenPrograms(t *testing.T) {
	var files []string
	for _, pattern := range []string{"*.dl", "*.yaml"} {
		matches, err := filepath.Glob(filepath.Join("testdata", pattern))
		if err != nil {
			t.Fatal(err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		t.Fatal("no golden programs found")
	}

	for _, path := range files {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			wantPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".want"
			want, err := os.ReadFile(wantPath)
			if err != nil {
				t.Fatalf("missing %s: %v", wantPath, err)
			}

			var out bytes.Buffer
			res, err := RunFile(path, Options{Out: &out})
			if err != nil {
				t.Fatalf("RunFile: %v", err)
			}
			expectNoDiagnostics(t, res)
			if res.Fatal != nil {
				t.Fatalf("fatal: %v", res.Fatal)
			}
			if out.String() != string(want) {
				t.Errorf("output mismatch\n got: %q\nwant: %q", out.String(), string(want))
			}
			if got := strings.Join(res.Output, "\n") + "\n"; got != string(want) {
				t.Errorf("Result.Output = %q, want %q", got, string(want))
			}
		})
	}
}

func expectNoDiagnostics(t *testing.T, res *Result) {
	t.Helper()
	for _, d := range res.Diagnostics {
		t.Errorf("unexpected diagnostic: %s", d)
	}
}

func expectDiagnostic(t *testing.T, res *Result, code diagnostics.ErrorCode) Diagnostic {
	t.Helper()
	for _, d := range res.Diagnostics {
		if d.Code == code {
			return d
		}
	}
	t.Fatalf("expected a %s diagnostic, got %v", code, res.Diagnostics)
	return Diagnostic{}
}

func TestScenarioB_Redefinition(t *testing.T) {
	res := RunSource("var x = 3\nvar x = 3\nprint x", Options{})
	if len(res.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", res.Diagnostics)
	}
	d := expectDiagnostic(t, res, diagnostics.ErrS001)
	if d.Category != "RedefinitionError" {
		t.Errorf("category = %q", d.Category)
	}
	if d.Line != 2 || !strings.Contains(d.Message, "line 1") {
		t.Errorf("diagnostic should point at line 2 and cite line 1: %s", d)
	}
	if len(res.Output) != 0 {
		t.Errorf("program with diagnostics must not run, got output %v", res.Output)
	}
}

func TestDiagnosticsOrderedByLine(t *testing.T) {
	src := `var a = 1
procedure P {x[int]}
is
  print y
end procedure
P(1, 2),
b = 2
`
	res := RunSource(src, Options{})
	if len(res.Diagnostics) < 3 {
		t.Fatalf("expected at least 3 diagnostics, got %v", res.Diagnostics)
	}
	for i := 1; i < len(res.Diagnostics); i++ {
		if res.Diagnostics[i-1].Line > res.Diagnostics[i].Line {
			t.Errorf("diagnostics out of order: %v", res.Diagnostics)
		}
	}
	expectDiagnostic(t, res, diagnostics.ErrS002)
	expectDiagnostic(t, res, diagnostics.ErrA001)
}

func TestRunProgramAST(t *testing.T) {
	// print 1 & 2, built directly
	prog := &ast.Program{
		Statements: []ast.Statement{
			&ast.PrintStatement{
				Token: token.AtLine(1),
				Items: []ast.Expression{
					&ast.IntegerLiteral{Token: token.AtLine(1), Value: 1},
					&ast.IntegerLiteral{Token: token.AtLine(1), Value: 2},
				},
			},
		},
	}
	res := Run(prog, Options{})
	expectNoDiagnostics(t, res)
	if len(res.Output) != 1 || res.Output[0] != "1 2" {
		t.Errorf("Output = %q, want [\"1 2\"]", res.Output)
	}
	if res.RunID == "" {
		t.Error("RunID not set")
	}
}

func TestFlatScoping(t *testing.T) {
	src := `function FACT {n[int]} return int
is
  do 1 unless 1 < n otherwise FACT(n - 1) * n done
end function
print FACT(5)`

	cfg := config.Default()
	res := RunSource(src, Options{Config: cfg})
	if res.Fatal != nil || len(res.Output) != 1 || res.Output[0] != "120" {
		t.Fatalf("activation scoping: output %v, fatal %v", res.Output, res.Fatal)
	}

	cfg = config.Default()
	cfg.Scoping = config.ScopingFlat
	res = RunSource(src, Options{Config: cfg})
	if res.Fatal != nil || len(res.Output) != 1 || res.Output[0] != "1" {
		t.Fatalf("flat scoping: output %v, fatal %v", res.Output, res.Fatal)
	}
}

func TestFatalKeepsPartialOutput(t *testing.T) {
	res := RunSource("print 1,\nprint 1 / 0,\nprint 3", Options{})
	expectNoDiagnostics(t, res)
	if res.Fatal == nil {
		t.Fatal("expected a fatal error")
	}
	if !strings.Contains(res.Fatal.Error(), "division by zero") {
		t.Errorf("fatal = %v", res.Fatal)
	}
	if len(res.Output) != 1 || res.Output[0] != "1" {
		t.Errorf("Output = %v, want [1]", res.Output)
	}
	if res.OK() {
		t.Error("OK() should be false after a fatal error")
	}
}

func TestCallDepthLimit(t *testing.T) {
	src := `function F {n[int]} return int
is
  F(n + 1)
end function
print F(0)`
	cfg := config.Default()
	cfg.MaxCallDepth = 50
	res := RunSource(src, Options{Config: cfg})
	if res.Fatal == nil || !strings.Contains(res.Fatal.Error(), "maximum call depth 50") {
		t.Fatalf("expected call depth error, got %v", res.Fatal)
	}
}

func TestLexicalAndSyntaxErrors(t *testing.T) {
	res := RunSource("print 2024-02-30", Options{})
	expectDiagnostic(t, res, diagnostics.ErrL001)

	res = RunSource("print (1 + 2", Options{})
	expectDiagnostic(t, res, diagnostics.ErrP001)

	res = RunDocument([]byte("kind: program\nstatements:\n  - {kind: nonsense}\n"), Options{})
	expectDiagnostic(t, res, diagnostics.ErrP002)
}

func TestSymbolsSnapshot(t *testing.T) {
	res := RunSource("var x = 3\nvar d = 2020-01-01\nx = x + 1", Options{})
	expectNoDiagnostics(t, res)
	want := map[string]string{"x": "4", "d": "2020-01-01"}
	if len(res.Symbols) != 2 {
		t.Fatalf("Symbols = %+v", res.Symbols)
	}
	for _, info := range res.Symbols {
		if !info.Set || info.Value != want[info.Name] {
			t.Errorf("%s = %q (set %v), want %q", info.Name, info.Value, info.Set, want[info.Name])
		}
	}
	if res.Symbols[1].Type != "date" || res.Symbols[1].Line != 2 {
		t.Errorf("d: %+v", res.Symbols[1])
	}
}

func TestRunFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.txt")
	if err := os.WriteFile(path, []byte("print 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := RunFile(path, Options{}); err == nil {
		t.Error("expected an error for .txt input")
	}
	if _, err := RunFile(filepath.Join(t.TempDir(), "missing.dl"), Options{}); err == nil {
		t.Error("expected an error for a missing file")
	}
}
