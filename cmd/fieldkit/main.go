package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The validate command has already printed the message.
		if !errors.Is(err, errInvalidValue) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
