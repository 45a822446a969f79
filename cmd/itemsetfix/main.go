package main

import (
	"fmt"
	"os"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "itemsetfix:", err)
		os.Exit(1)
	}
}
