package main

import (
	"os"

	"github.com/tacogips/skadd/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
