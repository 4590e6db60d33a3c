// Command nicconv converts and decodes national identity card numbers
// without a database or server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
