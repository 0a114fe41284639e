package main

import "roomhub/cli/cmd"

func main() {
	cmd.Execute()
}
