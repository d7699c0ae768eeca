package main

import (
	"os"

	"github.com/rem-code-s/proposal-review-helper/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
