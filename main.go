package main

import "github.com/ptomes1987/regiojet-delays/cmd"

func main() {
	cmd.Execute()
}
