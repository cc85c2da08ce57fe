package main

import "github.com/mcoot/decklist-exporter/internal/cli"

func main() {
	cli.Execute()
}
