package main

import "github.com/emiliopalmerini/streamstats/internal/cli"

func main() {
	cli.Execute()
}
