package main

import (
	"github.com/robotalks/frsky.go/pkg/cli/sh"
	"github.com/robotalks/frsky.go/pkg/link"

	_ "github.com/robotalks/frsky.go/pkg/cli/cmds/all"
)

//go-build: CGO_ENABLED=0

func init() {
	link.SetupFlags()
}

func main() {
	sh.Main()
}
