package main

import "github.com/brewlab/mortar/pkg/cli"

func main() {
	cli.Execute()
}
