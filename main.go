package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/secnix/secnix/cmd"
	secerrors "github.com/secnix/secnix/internal/errors"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		// Exit status 2 is the pre-commit contract of the check
		// command: plaintext secrets were found.
		if errors.Is(err, secerrors.ErrUnencryptedSecrets) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
