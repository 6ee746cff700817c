package main

import "github.com/notargets/teslamesh/cmd"

func main() {
	cmd.Execute()
}
