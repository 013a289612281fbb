package main

import "github.com/soda3x/barista/cmd"

func main() {
	cmd.Execute()
}
