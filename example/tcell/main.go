// Package main demonstrates running prompts on a tcell screen via the
// asktcell adapter, the way a full-screen application would embed them.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/askkit/ask"
	"github.com/askkit/ask/asktcell"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	env, runErr := pick(screen)

	// Finalize before printing so the summary lands on the normal screen.
	screen.Fini()

	if errors.Is(runErr, ask.ErrCanceled) {
		fmt.Println("Canceled.")
		return
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
	fmt.Printf("Selected %s.\n", env)
}

func pick(screen tcell.Screen) (string, error) {
	list, err := ask.NewSelect("Environment", []ask.Choice[string]{
		{Title: "dev", Value: "dev", Description: "shared development cluster"},
		{Title: "staging", Value: "staging", Description: "pre-production"},
		{Title: "prod", Value: "prod", Description: "production"},
	})
	if err != nil {
		return "", err
	}
	return asktcell.Run(screen, list, ask.ThemeDark)
}
