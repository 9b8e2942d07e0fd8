package main

import "github.com/itsmostafa/treecut/cmd"

func main() {
	cmd.Execute()
}
