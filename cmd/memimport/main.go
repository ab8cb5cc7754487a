// Package main provides the memimport CLI application.
// memimport loads club member CSV exports into the roster service.
package main

import (
	"os"

	"github.com/swimroster/memimport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
