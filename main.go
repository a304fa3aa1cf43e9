// Package main is the entry point for the literal command.
package main

import (
	"github.com/conatus/literal-tools/cmd"
	"github.com/conatus/literal-tools/config"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	cmd.Execute()
}
