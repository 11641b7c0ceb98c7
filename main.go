package main

import (
	"os"

	"varc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
