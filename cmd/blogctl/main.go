package main

import "github.com/jeremyjsx/folio/internal/cli"

func main() {
	cli.Execute()
}
