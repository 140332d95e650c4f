package main

import "github.com/gopetstore/petstore/internal/cmd"

func main() {
	cmd.Execute()
}
