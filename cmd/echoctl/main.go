package main

import (
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run arma el árbol de comandos y cierra el journal aunque el comando falle.
func run(args []string, stdout, stderr io.Writer) error {
	root, a := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := a.close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
