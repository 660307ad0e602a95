package main

import (
	"os"

	"github.com/finuxhq/docqa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
