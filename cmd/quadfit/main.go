// Command quadfit runs the Simpson 1/3 integration demo and the linear regression
// demo, printing console reports and optionally saving figures and exports.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
