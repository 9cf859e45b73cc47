// Command dvbsenc encodes an MPEG transport stream into DVB-S baseband
// symbols: scrambling, systematic Reed-Solomon, convolutional
// interleaving, and a punctured convolutional inner code.
package main

import (
	"fmt"
	"os"

	"github.com/sdrtk/dvbsenc/internal/cmd"
)

var version = "dev"

func main() {
	if err := cmd.NewCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
