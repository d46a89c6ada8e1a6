package main

import "github.com/TomJGooding/jagt/cmd"

func main() {
	cmd.Execute()
}
