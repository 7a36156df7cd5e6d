// Command corvid-uci runs the engine as a UCI-speaking subprocess,
// reading commands from stdin and writing protocol responses to stdout.
package main

import (
	"os"

	"github.com/corvidchess/corvid/internal/uci"
)

func main() {
	session := uci.NewSession(os.Stdin, os.Stdout)
	session.Run()
}
