package main

import "github.com/mazhezhema/songtools/internal/cli"

func main() {
	cli.Main()
}
