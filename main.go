package main

import "github.com/djcass44/dpkg-parser/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
