package main

import (
	"os"

	"github.com/abhisek/snakequiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
