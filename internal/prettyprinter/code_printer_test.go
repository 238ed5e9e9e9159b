package prettyprinter_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/datelang/internal/ast"
	"github.com/funvibe/datelang/internal/lexer"
	"github.com/funvibe/datelang/internal/parser"
	"github.com/funvibe/datelang/internal/pipeline"
	"github.com/funvibe/datelang/internal/prettyprinter"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	ctx := pipeline.NewPipelineContext(input)
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, err := range ctx.Errors {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("parsing failed with errors:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
	return ctx.AstRoot
}

func TestCodePrinter(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"print", "print 1&2", "print 1 & 2\n"},
		{"precedence", "print (1+2)*3 & 1+2*3", "print (1 + 2) * 3 & 1 + 2 * 3\n"},
		{"left_assoc", "print 10-(4-3) & (10-4)-3", "print 10 - (4 - 3) & 10 - 4 - 3\n"},
		{"negative", "print -7/2 & -(x)", "print -7 / 2 & 0 - x\n"},
		{"string", `print "n =" & n`, "print \"n =\" & n\n"},
		{"attributes", "d.month = d'month + 1", "d.month = d'month + 1\n"},
		{"unless_expr", "x = do 1 unless y otherwise 2 done", "x = do 1 unless y otherwise 2 done\n"},
		{"loop", "do x = x + 1, print x until x = 3", "do\n    x = x + 1,\n    print x\nuntil x = 3\n"},
		{
			"unless_stmt",
			"do print 1 unless c otherwise print 2, print 3 done",
			"do\n    print 1\nunless c\notherwise\n    print 2,\n    print 3\ndone\n",
		},
		{
			"definitions",
			"var d = 2020-01-01 procedure P {a[int], b[date]} return int var n = 0 is return a end procedure print P(1, d)",
			"var d = 2020-01-01\nprocedure P {a[int], b[date]} return int\nvar n = 0\nis\n    return a\nend procedure\n\nprint P(1, d)\n",
		},
		{
			"function",
			"function FN {} return int is GX() end function print FN()",
			"function FN {} return int\nis\n    GX()\nend function\n\nprint FN()\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := prettyprinter.Format(parse(t, tc.input))
			if got != tc.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

// Formatting is a fixed point: formatting the formatted source changes
// nothing.
func TestCodePrinterRoundTrip(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "runner", "testdata", "*.dl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Skip("no sample programs")
	}
	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			once := prettyprinter.Format(parse(t, string(src)))
			twice := prettyprinter.Format(parse(t, once))
			if once != twice {
				t.Errorf("not stable:\n--- first\n%s\n--- second\n%s", once, twice)
			}
		})
	}
}
