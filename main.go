package main

import (
	"fmt"
	"os"

	"review-advisor/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "review-advisor: %v\n", err)
		os.Exit(1)
	}
}
