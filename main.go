package main

import "github.com/runcastdev/runcast/cmd"

func main() {
	cmd.Execute()
}
