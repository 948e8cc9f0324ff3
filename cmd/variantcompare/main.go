package main

import (
	"context"
	"os"

	"github.com/variantcompare/variantcompare/pkg/cmd"
)

func main() {
	os.Exit(cmd.Run(context.Background(), "variantcompare", os.Args[1:], os.Stdout, os.Stderr))
}
