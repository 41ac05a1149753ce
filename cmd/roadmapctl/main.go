// Command roadmapctl is the operator tool for the storefront roadmap
// service: schema migrations, the theme catalog, offline previews and
// development tokens.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
