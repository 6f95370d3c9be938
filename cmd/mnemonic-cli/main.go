package main

import (
	"mnemonic-core/cmd/mnemonic-cli/cmd"
)

func main() {
	cmd.Execute()
}
