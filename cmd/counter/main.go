package main

import (
	"os"

	"github.com/weegigs/wee-counter-go/cmd/counter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
