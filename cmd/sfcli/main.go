package main

import "github.com/starfishstorage/sfcli/internal/cli"

func main() {
	cli.Execute()
}
