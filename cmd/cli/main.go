package main

import (
	"os"

	"github.com/fin-tools/descuento/pkg/runtime/terminal"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Args:   os.Args[1:],
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})

	os.Exit(cli.Execute())
}
