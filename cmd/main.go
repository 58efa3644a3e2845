// Package main is the entry point of the multilingual site.
package main

import (
	"context"
	"os"

	"github.com/guttosm/multilingual/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
