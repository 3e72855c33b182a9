// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/hubgen/cmd/hubgen/cmd"
)

func main() {
	cmd.Execute()
}
