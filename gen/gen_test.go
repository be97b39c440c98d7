package gen_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nigel2392/callable/gen"
	"github.com/stretchr/testify/require"
)

// parseDecls parses the generated source and collects the names of all
// top-level type and function declarations.
func parseDecls(t *testing.T, src []byte) map[string]bool {
	t.Helper()

	var fset = token.NewFileSet()
	file, err := parser.ParseFile(fset, "funcs_gen.go", src, parser.ParseComments)
	require.NoError(t, err)

	var names = make(map[string]bool)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					names[ts.Name.Name] = true
				}
			}
		case *ast.FuncDecl:
			names[d.Name.Name] = true
		}
	}
	return names
}

func TestGenerateDefaults(t *testing.T) {
	src, err := gen.Config{Arity: gen.DefaultArity}.Generate()
	require.NoError(t, err)

	var names = parseDecls(t, src)

	for _, name := range []string{
		"Func0", "Func5", "Proc0", "Proc5",
		"OfFunc0", "OfProc0", "CallFunc5", "CallProc5",
		"BindFunc1", "BindProc5",
	} {
		require.True(t, names[name], "missing declaration %s", name)
	}

	// Bind produces zero-arity callables; there is nothing to bind at arity 0.
	require.False(t, names["BindFunc0"])
	require.False(t, names["BindProc0"])

	require.True(t, strings.HasPrefix(string(src), "// Code generated by callable-gen; DO NOT EDIT."))
}

func TestGenerateArityBound(t *testing.T) {
	src, err := gen.Config{Arity: 2}.Generate()
	require.NoError(t, err)

	var names = parseDecls(t, src)
	require.True(t, names["Func2"])
	require.True(t, names["Proc2"])
	require.False(t, names["Func3"])
	require.False(t, names["Proc3"])
}

func TestGenerateArityZero(t *testing.T) {
	src, err := gen.Config{}.Generate()
	require.NoError(t, err)

	var names = parseDecls(t, src)
	require.True(t, names["Func0"])
	require.True(t, names["Proc0"])
	require.False(t, names["Func1"])
	require.False(t, names["Proc1"])
}

func TestGenCLIArityZero(t *testing.T) {
	var sb strings.Builder

	app := gen.NewGenCLI()
	app.Writer = &sb
	err := app.Run([]string{"callable-gen", "--arity", "0"})
	require.NoError(t, err)

	var names = parseDecls(t, []byte(sb.String()))
	require.True(t, names["Func0"])
	require.False(t, names["Func1"])
}

func TestGenerateNegativeArity(t *testing.T) {
	_, err := gen.Config{Arity: -1}.Generate()
	require.Error(t, err)
}

func TestGeneratePackageName(t *testing.T) {
	src, err := gen.Config{Package: "wrappers", Arity: 1}.Generate()
	require.NoError(t, err)
	require.Contains(t, string(src), "package wrappers\n")
}

func TestGenerateDeterministic(t *testing.T) {
	var cfg = gen.Config{Arity: 3}

	first, err := cfg.Generate()
	require.NoError(t, err)
	second, err := cfg.Generate()
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestGenCLIWritesFile(t *testing.T) {
	var out = filepath.Join(t.TempDir(), "funcs_gen.go")

	app := gen.NewGenCLI()
	err := app.Run([]string{"callable-gen", "--arity", "3", "--out", out})
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)

	var names = parseDecls(t, src)
	require.True(t, names["Func3"])
	require.False(t, names["Func4"])
}

func TestGenCLIWritesStdout(t *testing.T) {
	var sb strings.Builder

	app := gen.NewGenCLI()
	app.Writer = &sb
	err := app.Run([]string{"callable-gen", "--arity", "1"})
	require.NoError(t, err)

	var names = parseDecls(t, []byte(sb.String()))
	require.True(t, names["Func1"])
	require.True(t, names["Proc1"])
}
