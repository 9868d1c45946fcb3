// Package all registers all frskycli commands.
package all

import (
	_ "github.com/robotalks/frsky.go/pkg/cli/cmds/codec"
)
