package main

import "github.com/Termantita/globed2/internal/cli"

func main() {
	cli.Main()
}
