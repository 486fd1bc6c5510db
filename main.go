package main

import "walkroute/cmd"

func main() {
	cmd.Execute()
}
