// Package main demonstrates the built-in themes. Pick one, then answer
// a confirm prompt rendered with it.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/askkit/ask"
)

func main() {
	picker, err := ask.NewSelect("Theme", []ask.Choice[*ask.Theme]{
		{Title: "default", Value: ask.ThemeDefault},
		{Title: "dark", Value: ask.ThemeDark, Description: "Dracula palette"},
		{Title: "light", Value: ask.ThemeLight, Description: "for light backgrounds"},
		{Title: "accessible", Value: ask.ThemeAccessible, Description: "high contrast"},
	})
	if err != nil {
		log.Fatal(err)
	}
	theme, err := ask.Run(picker)
	if err != nil {
		exit(err)
	}

	ok, err := ask.Run(ask.NewConfirm("Keep this theme?").WithDefault(true), ask.WithTheme(theme))
	if err != nil {
		exit(err)
	}
	if ok {
		fmt.Printf("Using the %s theme.\n", theme.Name)
		return
	}
	fmt.Println("Sticking with the default theme.")
}

func exit(err error) {
	if errors.Is(err, ask.ErrCanceled) {
		fmt.Println("Canceled.")
		os.Exit(1)
	}
	log.Fatal(err)
}
