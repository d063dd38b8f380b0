package main

import "github.com/clue-solve/nonogram/cmd"

func main() {
	cmd.Execute()
}
