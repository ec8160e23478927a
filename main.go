package main

import "texplore/internal/cli"

func main() {
	cli.Execute()
}
