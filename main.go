package main

import (
	"github.com/emporium/storefront/cmd"
)

func main() {
	cmd.Start()
}
