//go:build !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "msgbox examples only run on Windows")
	os.Exit(1)
}
