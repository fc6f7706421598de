package main

import (
	"fmt"
	"os"
)

func main() {
	Execute()
}

// fatal prints msg to stderr and exits with status 1.
func fatal(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
