package main

import (
	"fmt"
	"os"

	"github.com/Nigel2392/callable/gen"
)

func main() {
	app := gen.NewGenCLI()

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[Error] %s\n", err.Error())
		os.Exit(1)
	}
}
