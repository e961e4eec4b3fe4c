package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sonatype-nexus-community/iqspec/cmd/iqspec/commands"
	"github.com/sonatype-nexus-community/iqspec/oaserrors"
)

func main() {
	os.Exit(exitCode(commands.HandleUpdate(os.Args[1:]), os.Stderr))
}

// exitCode reports err on stderr and maps it to the process exit code.
// A usage error has already printed the usage line and exits 0.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, oaserrors.ErrUsage) {
		return 0
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
