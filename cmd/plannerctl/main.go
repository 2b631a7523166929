// Command plannerctl runs the theme planning rules against a YAML file of
// themes, without a database.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
