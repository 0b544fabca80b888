package main

import (
	"os"

	"github.com/gitscribe/gitscribe/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
