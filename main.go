package main

import "shrink/cmd"

func main() {
	cmd.Execute()
}
