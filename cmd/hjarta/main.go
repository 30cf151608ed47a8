// Command hjarta loads a YAML configuration file into typed configuration sections,
// validates it and prints the resulting tree.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
