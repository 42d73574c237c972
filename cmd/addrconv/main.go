package main

import (
	"github.com/cardanokit/cardanokit/cmd/addrconv/commands"
)

func main() {
	commands.Execute()
}
