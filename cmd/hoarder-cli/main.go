package main

import "hoarder/cmd/hoarder-cli/cmd"

func main() {
	cmd.Execute()
}
