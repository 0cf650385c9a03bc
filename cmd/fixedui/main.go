// Command fixedui inspects fixedui projects and runs the showcase UI on a
// software framebuffer.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/fixedui/cmd/fixedui/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
