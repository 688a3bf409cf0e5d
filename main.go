package main

import "github.com/dylangresham/simple-shell/cmd"

func main() {
	cmd.Execute()
}
