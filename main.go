package main

import "brick-validator/cmd"

func main() {
	cmd.Execute()
}
