package main

import "wikidex/internal/cli"

func main() {
	cli.Execute()
}
