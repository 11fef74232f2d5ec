package main

import "github.com/tanq16/filescooper/cmd"

func main() {
	cmd.Execute()
}
