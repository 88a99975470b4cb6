package main

import "vedamatch/cmd/client/cmd"

func main() {
	cmd.Execute()
}
