package main

import (
	"os"

	"github.com/silentfield/fdkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
