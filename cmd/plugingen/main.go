package main

import (
	"fmt"
	"os"

	"github.com/teranos/plugingen/cmd/plugingen/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
