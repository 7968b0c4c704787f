// Command kbchat is a terminal client for a knowledge base service.
package main

import (
	"os"

	"github.com/ragbase/kbchat/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
