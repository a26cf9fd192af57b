// Package main demonstrates input validation: live validators on text
// and password prompts plus the built-in range checks of number prompts.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/askkit/ask"
)

var usernameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

func main() {
	fmt.Println("Account Creation")
	fmt.Println("Invalid input shows an error and keeps the prompt open.")
	fmt.Println()

	username, err := ask.Run(ask.NewText("Username").
		WithPlaceholder("lowercase, digits, dashes").
		WithValidator(func(value string) error {
			if !usernameRe.MatchString(value) {
				return errors.New("must start with a letter and use only a-z, 0-9, -")
			}
			return nil
		}))
	if err != nil {
		exit(err)
	}

	// uint8 rejects a minus sign outright and re-prompts on overflow,
	// so no validator is needed here.
	age, err := ask.Run(ask.NewNumber[uint8]("Age"))
	if err != nil {
		exit(err)
	}

	password, err := ask.Run(ask.NewPassword("Password").
		WithValidator(func(value string) error {
			switch {
			case len(value) < 10:
				return errors.New("use at least 10 characters")
			case strings.ToLower(value) == value:
				return errors.New("mix upper and lower case")
			case !strings.ContainsAny(value, "0123456789"):
				return errors.New("include at least one digit")
			default:
				return nil
			}
		}))
	if err != nil {
		exit(err)
	}

	fmt.Printf("Created %s (age %d, password %d characters)\n", username, age, len(password))
}

func exit(err error) {
	if errors.Is(err, ask.ErrCanceled) {
		fmt.Println("Canceled.")
		os.Exit(1)
	}
	log.Fatal(err)
}
