package main

import (
	"os"

	"github.com/afyajamii/afya-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
