package main

import (
	"os"

	"github.com/arloliu/tokread/internal/cli"
)

func main() {
	if err := cli.Command(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
