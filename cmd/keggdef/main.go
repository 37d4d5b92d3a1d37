package main

import "github.com/mkossman/keggdef/internal/cli"

func main() {
	cli.Execute()
}
