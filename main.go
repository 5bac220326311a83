package main

import "github.com/fcgo/cashflow-projector/cmd"

func main() {
	cmd.Execute()
}
