package main

import "github.com/NahomAnteneh/gitlite/cmd"

func main() {
	cmd.Execute()
}
