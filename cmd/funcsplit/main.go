package main

import "github.com/mvp-joe/funcsplit/internal/cli"

func main() {
	cli.Execute()
}
