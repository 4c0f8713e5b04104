package main

import (
	"fmt"
	"os"

	"github.com/ByLCY/cvpress/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cvpress:", err)
		os.Exit(1)
	}
}
