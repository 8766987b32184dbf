package commands

import (
	"fmt"
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("yapback error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`yapback - feedback SDK tooling

usage:
  yapback run <config.yml>                    start the local dev backend
  yapback send <config.yml> <message> [file]  submit feedback, optionally with attachments
  yapback version                             print the SDK version
  yapback help                                print this help`) //nolint
}
