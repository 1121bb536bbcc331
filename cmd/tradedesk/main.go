package main

import "github.com/rustyeddy/tradedesk/internal/cli"

func main() {
	cli.Execute()
}
