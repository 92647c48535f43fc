// Package main is the entry point for the mdb CLI tool.
package main

import (
	"os"

	"github.com/AlexanderBrevig/mdb/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
