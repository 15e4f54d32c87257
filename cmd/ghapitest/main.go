package main

import (
	"os"

	"github.com/0reilly/github-api-rate-limit-tester/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
