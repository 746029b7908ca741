package main

import "github.com/nathanhack/lincode/cmd"

func main() {
	cmd.Execute()
}
