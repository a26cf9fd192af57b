// Package main demonstrates running a prompt inside a Bubble Tea
// program via the asktea adapter.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askkit/ask"
	"github.com/askkit/ask/asktea"
)

func main() {
	program := tea.NewProgram(asktea.New(ask.NewConfirm("Deploy to production?")))

	out, err := program.Run()
	if err != nil {
		log.Fatal(err)
	}

	ok, err := out.(asktea.Model[bool]).Value()
	if errors.Is(err, ask.ErrCanceled) {
		fmt.Println("Canceled.")
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}

	if ok {
		fmt.Println("Deploying.")
		return
	}
	fmt.Println("Not today.")
}
