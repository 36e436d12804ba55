// Command pathlab generates graphs, runs the step-recording Dijkstra engine
// and solves grid shortest paths, printing JSON documents for renderers.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
