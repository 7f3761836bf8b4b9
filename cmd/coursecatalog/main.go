package main

import "github.com/gostonefire/coursehashmap/internal/cli"

func main() {
	cli.Execute()
}
