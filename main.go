package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/meilikey/meilikey/internal/cmd"
	"github.com/meilikey/meilikey/internal/logging"
)

func main() {
	err := cmd.Run(context.Background(), os.Args[1:]...)
	if err != nil {
		var userErr cmd.Error
		switch {
		case errors.Is(err, terminal.InterruptErr):
			logging.Debugf("user interrupted the process")
		case errors.As(err, &userErr):
			fmt.Fprintln(os.Stderr, userErr.Error())
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	os.Exit(cmd.ExitCode(err))
}
