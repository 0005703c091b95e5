package main

import "orderpad/cmd/orderpad/cmd"

func main() {
	cmd.Execute()
}
