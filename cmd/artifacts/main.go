// Command artifacts inspects the artifacts scenarios leave in the
// results tree and previews what the artifact phase attaches.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
