package main

import "github.com/lmmx/mdbed/internal/cli"

func main() {
	cli.Execute()
}
