package main

import (
	"os"

	"github.com/bestxiangest/Goods-Trading-Center/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
