package main

import "github.com/mcoot/vocify/internal/cli"

func main() {
	cli.Execute()
}
