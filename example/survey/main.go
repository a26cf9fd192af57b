// Package main demonstrates a multi-step setup wizard using every
// widget kind: text, number, password, select, multi-select, toggle,
// confirm and a final acknowledgment message.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/askkit/ask"
)

type region struct {
	name    string
	baseURL string
}

func main() {
	fmt.Println("Server Setup")
	fmt.Println("Press Esc or Ctrl+C at any step to abort.")
	fmt.Println()

	hostname, err := ask.Run(ask.NewText("Hostname").
		WithDefault("web-01").
		WithValidator(func(value string) error {
			if strings.ContainsAny(value, " \t") {
				return errors.New("hostname must not contain whitespace")
			}
			return nil
		}))
	if err != nil {
		exit(err)
	}

	port, err := ask.Run(ask.NewNumber[uint16]("Port").WithInitial(8080))
	if err != nil {
		exit(err)
	}

	passphrase, err := ask.Run(ask.NewPassword("Admin passphrase").
		WithValidator(func(value string) error {
			if len(value) < 8 {
				return errors.New("use at least 8 characters")
			}
			return nil
		}))
	if err != nil {
		exit(err)
	}

	regions, err := ask.NewSelect("Region", []ask.Choice[region]{
		{Title: "eu-west", Value: region{"eu-west", "https://eu.example.com"}, Description: "Dublin"},
		{Title: "us-east", Value: region{"us-east", "https://us.example.com"}, Description: "Virginia"},
		{Title: "ap-south", Value: region{"ap-south", "https://ap.example.com"}, Description: "Mumbai", Disabled: true},
	})
	if err != nil {
		log.Fatal(err)
	}
	where, err := ask.Run(regions)
	if err != nil {
		exit(err)
	}

	featureList, err := ask.NewMultiSelect("Features", ask.Choices("metrics", "tracing", "backups", "cdn"))
	if err != nil {
		log.Fatal(err)
	}
	features, err := ask.Run(featureList.WithMin(1).WithMax(3))
	if err != nil {
		exit(err)
	}

	tlsMode, err := ask.Run(ask.NewToggle("TLS", "optional", "required").WithInitial(1))
	if err != nil {
		exit(err)
	}

	fmt.Println()
	fmt.Printf("  host:      %s:%d\n", hostname, port)
	fmt.Printf("  region:    %s (%s)\n", where.name, where.baseURL)
	fmt.Printf("  features:  %s\n", strings.Join(features, ", "))
	fmt.Printf("  tls:       %s\n", tlsMode)
	fmt.Printf("  password:  %d characters\n", len(passphrase))
	fmt.Println()

	ok, err := ask.Run(ask.NewConfirm("Apply this configuration?"))
	if err != nil {
		exit(err)
	}
	if !ok {
		fmt.Println("Nothing changed.")
		return
	}

	if _, err := ask.Run(ask.NewMessage("Configuration saved.")); err != nil {
		exit(err)
	}
}

func exit(err error) {
	if errors.Is(err, ask.ErrCanceled) {
		fmt.Println("Canceled.")
		os.Exit(1)
	}
	log.Fatal(err)
}
