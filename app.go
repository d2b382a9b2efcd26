package main

import "github.com/scmtools/gitlog/cmd"

func main() {
	cmd.Run()
}
