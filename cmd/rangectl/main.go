package main

import (
	"os"

	"github.com/iotaledger/hive.go/ranges/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
