package gen

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// The maximum arity the CLI generates wrappers for by default.
//
// This matches the amount of argument type parameters that stays
// readable at a call site; the generator accepts any other value.
const DefaultArity = 5

// The default package name written into the generated file.
const DefaultPackage = "callable"

// The default tool name written into the generated-code header.
const DefaultTool = "callable-gen"

// Config controls the shape of the generated source file.
//
// The zero value generates only the zero-arity wrappers for
// package callable; the CLI defaults to DefaultArity instead.
type Config struct {
	// The package name of the generated file.
	Package string

	// The maximum amount of arguments to generate wrappers for.
	//
	// Wrappers are generated for every arity from 0 up to and
	// including this value; 0 generates the zero-arity wrappers only.
	Arity int

	// The tool name written into the generated-code header.
	Tool string
}

// Generate renders the wrapper declarations for every arity up to
// c.Arity and returns the formatted source.
//
// The output is deterministic for a given Config.
func (c Config) Generate() ([]byte, error) {
	if c.Arity < 0 {
		return nil, fmt.Errorf("arity %d is negative", c.Arity)
	}
	if c.Package == "" {
		c.Package = DefaultPackage
	}
	if c.Tool == "" {
		c.Tool = DefaultTool
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by %s; DO NOT EDIT.\n\n", c.Tool)
	fmt.Fprintf(&b, "package %s\n\n", c.Package)

	for k := 0; k <= c.Arity; k++ {
		fmt.Fprintf(&b, "// ---- arity %d ----\n\n", k)
		writeFunc(&b, k)
		writeProc(&b, k)
	}

	return imports.Process("", b.Bytes(), nil)
}

// writeFunc emits the value-returning wrapper declarations for arity k.
func writeFunc(b *bytes.Buffer, k int) {
	var (
		name = fmt.Sprintf("Func%d", k)
		tp   = typeParams(k, true)
		ta   = typeArgs(k, true)
		sig  = rawSig(k, true)
		with = withArgs(k)
	)

	fmt.Fprintf(b, "// %s is a held callable taking %s and returning a value.\n", name, argCount(k))
	fmt.Fprintf(b, "//\n")
	fmt.Fprintf(b, "// The callable may fail with an error, which is propagated to the caller\n")
	fmt.Fprintf(b, "// unmodified.\n")
	fmt.Fprintf(b, "type %s%s %s\n\n", name, tp, sig)

	fmt.Fprintf(b, "// Of%s holds the given callable for later invocation.\n", name)
	fmt.Fprintf(b, "//\n")
	fmt.Fprintf(b, "// The callable is returned unchanged; holding it only fixes its type.\n")
	fmt.Fprintf(b, "func Of%s%s(fn %s) %s%s {\n\treturn fn\n}\n\n", name, tp, sig, name, ta)

	fmt.Fprintf(b, "// Call invokes the held callable%s.\n", with)
	fmt.Fprintf(b, "//\n")
	fmt.Fprintf(b, "// Any error returned by the callable is returned unmodified.\n")
	fmt.Fprintf(b, "func (fn %s%s) Call(%s) (R, error) {\n\treturn fn(%s)\n}\n\n", name, ta, params(k), args(k))

	fmt.Fprintf(b, "// Call%s invokes the given callable immediately%s.\n", name, with)
	fmt.Fprintf(b, "func Call%s%s(fn %s%s) (R, error) {\n\treturn Of%s(fn).Call(%s)\n}\n\n", name, tp, sig, prefixed(params(k)), name, args(k))

	if k > 0 {
		fmt.Fprintf(b, "// Bind%s binds the supplied arguments to the given callable, producing\n", name)
		fmt.Fprintf(b, "// a zero-arity held callable for later invocation.\n")
		fmt.Fprintf(b, "func Bind%s%s(fn %s, %s) Func0[R] {\n\treturn func() (R, error) {\n\t\treturn fn(%s)\n\t}\n}\n\n", name, tp, sig, params(k), args(k))
	}
}

// writeProc emits the void wrapper declarations for arity k.
func writeProc(b *bytes.Buffer, k int) {
	var (
		name = fmt.Sprintf("Proc%d", k)
		tp   = typeParams(k, false)
		ta   = typeArgs(k, false)
		sig  = rawSig(k, false)
		with = withArgs(k)
	)

	fmt.Fprintf(b, "// %s is a held callable taking %s and returning no value.\n", name, argCount(k))
	fmt.Fprintf(b, "//\n")
	fmt.Fprintf(b, "// The callable may fail with an error, which is propagated to the caller\n")
	fmt.Fprintf(b, "// unmodified.\n")
	fmt.Fprintf(b, "type %s%s %s\n\n", name, tp, sig)

	fmt.Fprintf(b, "// Of%s holds the given callable for later invocation.\n", name)
	fmt.Fprintf(b, "//\n")
	fmt.Fprintf(b, "// The callable is returned unchanged; holding it only fixes its type.\n")
	fmt.Fprintf(b, "func Of%s%s(fn %s) %s%s {\n\treturn fn\n}\n\n", name, tp, sig, name, ta)

	fmt.Fprintf(b, "// Call invokes the held callable%s.\n", with)
	fmt.Fprintf(b, "//\n")
	fmt.Fprintf(b, "// Any error returned by the callable is returned unmodified.\n")
	fmt.Fprintf(b, "func (fn %s%s) Call(%s) error {\n\treturn fn(%s)\n}\n\n", name, ta, params(k), args(k))

	fmt.Fprintf(b, "// Call%s invokes the given callable immediately%s.\n", name, with)
	fmt.Fprintf(b, "func Call%s%s(fn %s%s) error {\n\treturn Of%s(fn).Call(%s)\n}\n\n", name, tp, sig, prefixed(params(k)), name, args(k))

	if k > 0 {
		fmt.Fprintf(b, "// Bind%s binds the supplied arguments to the given callable, producing\n", name)
		fmt.Fprintf(b, "// a zero-arity held callable for later invocation.\n")
		fmt.Fprintf(b, "func Bind%s%s(fn %s, %s) Proc0 {\n\treturn func() error {\n\t\treturn fn(%s)\n\t}\n}\n\n", name, tp, sig, params(k), args(k))
	}
}

// typeParams renders the type parameter list for arity k,
// including the result parameter R when ret is set.
//
// Arity 0 without a result has no type parameters at all.
func typeParams(k int, ret bool) string {
	var names = make([]string, 0, k+1)
	for i := 1; i <= k; i++ {
		names = append(names, fmt.Sprintf("A%d", i))
	}
	if ret {
		names = append(names, "R")
	}
	if len(names) == 0 {
		return ""
	}
	return "[" + strings.Join(names, ", ") + " any]"
}

// typeArgs renders the type argument list used on receivers and
// return types for arity k.
func typeArgs(k int, ret bool) string {
	var names = make([]string, 0, k+1)
	for i := 1; i <= k; i++ {
		names = append(names, fmt.Sprintf("A%d", i))
	}
	if ret {
		names = append(names, "R")
	}
	if len(names) == 0 {
		return ""
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// rawSig renders the unnamed function signature for arity k.
func rawSig(k int, ret bool) string {
	var names = make([]string, 0, k)
	for i := 1; i <= k; i++ {
		names = append(names, fmt.Sprintf("A%d", i))
	}
	if ret {
		return fmt.Sprintf("func(%s) (R, error)", strings.Join(names, ", "))
	}
	return fmt.Sprintf("func(%s) error", strings.Join(names, ", "))
}

// params renders the named parameter list for arity k.
func params(k int) string {
	var names = make([]string, 0, k)
	for i := 1; i <= k; i++ {
		names = append(names, fmt.Sprintf("a%d A%d", i, i))
	}
	return strings.Join(names, ", ")
}

// args renders the argument list for arity k.
func args(k int) string {
	var names = make([]string, 0, k)
	for i := 1; i <= k; i++ {
		names = append(names, fmt.Sprintf("a%d", i))
	}
	return strings.Join(names, ", ")
}

// withArgs renders the doc suffix for arities with arguments.
func withArgs(k int) string {
	if k == 0 {
		return ""
	}
	return " with the supplied arguments"
}

// prefixed prepends a comma separator to a non-empty parameter list.
func prefixed(s string) string {
	if s == "" {
		return ""
	}
	return ", " + s
}

var countWords = []string{
	"no", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten",
}

// argCount renders the amount of arguments for use in doc comments.
func argCount(k int) string {
	var word string
	if k < len(countWords) {
		word = countWords[k]
	} else {
		word = fmt.Sprintf("%d", k)
	}
	if k == 1 {
		return word + " argument"
	}
	return word + " arguments"
}
