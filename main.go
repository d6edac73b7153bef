package main

import "github.com/notargets/amr3d/cmd"

func main() {
	cmd.Execute()
}
