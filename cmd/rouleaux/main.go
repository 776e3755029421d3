package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	rouleaux "go.rouleaux.dev/pkg"
	"go.rouleaux.dev/internal/render"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: rouleaux <source-file>")
		os.Exit(1)
	}

	source := os.Args[1]

	p := rouleaux.NewPipeline()
	_, table, err := p.Compile(source)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	color.Cyan("Ok, %d symbols resolved", table.Len())
}

func printError(err error) {
	if ce, ok := err.(rouleaux.CompileError); ok {
		color.Red("%s", render.Text(ce))
		return
	}

	color.Red("%s", err.Error())
}
