// main.go
//
// Entry point; the CLI lives in cmd/root.go.

package main

import (
	"cpusim/cmd"
)

func main() {
	cmd.Execute()
}
