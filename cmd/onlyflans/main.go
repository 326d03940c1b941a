package main

import "onlyflans/cmd/onlyflans/commands"

func main() {
	commands.Execute()
}
