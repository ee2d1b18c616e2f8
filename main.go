// Package main is the entry point for the ioctx command-line application.
package main

import (
	"github.com/ioctx-cli/ioctx/cmd"
	"github.com/ioctx-cli/ioctx/config"
	"github.com/ioctx-cli/ioctx/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
