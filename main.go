package main

import (
	"fmt"
	"os"

	"github.com/stockpile/stockpile/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stockpile:", err)
		os.Exit(1)
	}
}
