// Package main demonstrates a minimal prompt sequence.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/askkit/ask"
)

func main() {
	fmt.Println("Project Setup")
	fmt.Println()

	name, err := ask.Run(ask.NewText("Project name").WithPlaceholder("my-service"))
	if err != nil {
		exit(err)
	}

	private, err := ask.Run(ask.NewConfirm("Private repository?").WithDefault(true))
	if err != nil {
		exit(err)
	}

	visibility := "public"
	if private {
		visibility = "private"
	}
	fmt.Printf("Creating %s (%s)\n", name, visibility)
}

func exit(err error) {
	if errors.Is(err, ask.ErrCanceled) {
		fmt.Println("Canceled.")
		os.Exit(1)
	}
	log.Fatal(err)
}
