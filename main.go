package main

import (
	"os"

	"github.com/fazeleardestani/cinema-ticket/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
