package main

import (
	_ "time/tzdata"

	"github.com/pfrederiksen/mlb-saturday-games/internal/cli"
)

var version = "dev"

func main() {
	cli.Version = version
	cli.Execute()
}
