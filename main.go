package main

import (
	"os"

	"subsample/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
