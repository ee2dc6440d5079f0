package main

import (
	"errors"
	"log"
	"os"

	"tableflip.dev/todos/pkg/commands"
	"tableflip.dev/todos/pkg/commands/options"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		var reported *options.ReportedError
		if errors.As(err, &reported) {
			os.Exit(1)
		}
		log.Fatalf("error during command execution: %v", err)
	}
}
