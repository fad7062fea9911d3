package main

import (
	"os"

	"github.com/studiolingo/studiolingo/cmd/studiolingo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
