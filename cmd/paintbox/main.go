package main

import "github.com/amterp/paintbox/internal/cli"

func main() {
	cli.Run()
}
