// Command ecarith exercises the curve arithmetic from the command line.
package main

import "os"

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
