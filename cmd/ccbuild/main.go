package main

import "github.com/ccbuild/ccbuild/cmd/ccbuild/internal"

func main() {
	internal.Execute()
}
