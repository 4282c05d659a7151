package main

import "linkboard/cmd/server/cmd"

func main() {
	cmd.Execute()
}
