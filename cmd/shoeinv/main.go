package main

import (
	"os"

	"github.com/pankajredekar/shoeinv/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
