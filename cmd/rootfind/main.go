package main

import "github.com/numkit/rootfind/cmd"

func main() {
	cmd.Execute()
}
