package main

import "github.com/hqlgen/hqlgen/cmd"

func main() {
	cmd.Execute()
}
