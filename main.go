package main

import "github.com/spritegen/spritegen/cmd"

// main is the entry point of the spritegen CLI.
func main() {
	cmd.Execute()
}
