package main

import (
	"os"

	"github.com/changetools/bumpchanges/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
