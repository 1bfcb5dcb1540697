package main

import "github.com/user/trim-cli/cmd"

func main() {
	cmd.Execute()
}
