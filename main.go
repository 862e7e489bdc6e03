package main

import "fcount/cmd"

func main() {
	cmd.Execute()
}
