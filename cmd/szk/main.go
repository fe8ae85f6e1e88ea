package main

import (
	"os"
)

func main() {
	// cobra has already printed the error
	if newRootCmd().Execute() != nil {
		os.Exit(1)
	}
}
