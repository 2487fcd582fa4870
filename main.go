package main

import "github.com/naka-gawa/github-profile-explorer/cmd"

func main() {
	cmd.Execute()
}
