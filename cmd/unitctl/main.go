package main

import "unitctl/cmd/unitctl/cmd"

func main() {
	cmd.Execute()
}
