package main

import "goldkarat/cmd"

func main() {
	cmd.Execute()
}
