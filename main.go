package main

import (
	"github.com/binaudit/binaudit/cmd"
)

func main() {
	cmd.Execute()
}
