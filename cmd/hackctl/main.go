package main

import (
	"github.com/dpetrucci/hackfest/internal/cli"
)

func main() {
	cli.Execute()
}
