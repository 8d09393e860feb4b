package main

import "github.com/provlabs/datedirs/cmd/irsim/cmd"

func main() {
	cmd.Execute()
}
