package main

import (
	"os"

	"github.com/arloliu/interop/internal/cli"
)

// Main is the entry point, exported for tests.
func Main() int {
	if err := cli.Execute(); err != nil {
		return 1
	}

	return 0
}

func main() {
	os.Exit(Main())
}
