package main

import "github.com/katalvlaran/gridbfs/internal/cli"

func main() {
	cli.Execute()
}
