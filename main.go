package main

import (
	"os"

	"github.com/avelar/wordsight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
