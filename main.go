package main

import "bidding-marketplace/internal/cli"

func main() {
	cli.Execute()
}
