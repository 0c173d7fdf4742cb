package main

import (
	"os"

	"github.com/bnema/pyme-segmenter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
