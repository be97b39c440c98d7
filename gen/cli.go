package gen

import (
	"os"

	"github.com/urfave/cli/v2"
)

var _FlagArity = &cli.IntFlag{
	Name:  "arity",
	Usage: "sets the maximum amount of arguments to generate wrappers for",
	Value: DefaultArity,
}

var _FlagPackage = &cli.StringFlag{
	Name:  "package",
	Usage: "sets the package name of the generated file",
	Value: DefaultPackage,
}

var _FlagOut = &cli.StringFlag{
	Name:  "out",
	Usage: "sets the output path, - writes to stdout",
	Value: "-",
}

// NewGenCLI returns the cli app for the wrapper generator.
func NewGenCLI() *cli.App {
	return &cli.App{
		Name: "callable-gen",
		Usage: "Generates the arity wrappers for the callable package.\n\n" +
			"callable-gen --arity 5 --out funcs_gen.go\n" +
			"callable-gen --arity 20 --package callable",
		Flags: []cli.Flag{
			_FlagArity,
			_FlagPackage,
			_FlagOut,
		},
		Action: func(ctx *cli.Context) error {
			var cfg = Config{
				Package: ctx.String(_FlagPackage.Name),
				Arity:   ctx.Int(_FlagArity.Name),
			}

			src, err := cfg.Generate()
			if err != nil {
				return err
			}

			var out = ctx.String(_FlagOut.Name)
			if out == "" || out == "-" {
				_, err = ctx.App.Writer.Write(src)
				return err
			}
			return os.WriteFile(out, src, 0644)
		},
	}
}
