// Package main demonstrates list prompts: a typed select with
// descriptions and disabled rows, a paged select over a long list, and
// a bounded multi-select.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/askkit/ask"
)

type instance struct {
	name string
	ram  int // GiB
}

func main() {
	fmt.Println("Instance Picker")
	fmt.Println("Up/Down move, Left/Right change page, Enter picks.")
	fmt.Println()

	sizes, err := ask.NewSelect("Instance size", []ask.Choice[instance]{
		{Title: "small", Value: instance{"small", 2}, Description: "2 GiB RAM"},
		{Title: "medium", Value: instance{"medium", 8}, Description: "8 GiB RAM"},
		{Title: "large", Value: instance{"large", 32}, Description: "32 GiB RAM"},
		{Title: "metal", Value: instance{"metal", 256}, Description: "bare metal", Disabled: true},
	})
	if err != nil {
		log.Fatal(err)
	}
	size, err := ask.Run(sizes)
	if err != nil {
		exit(err)
	}

	// A long list pages automatically; WithPageSize shrinks the window.
	var zones []ask.Choice[string]
	for _, region := range []string{"eu", "us", "ap"} {
		for i := 1; i <= 8; i++ {
			zone := fmt.Sprintf("%s-%d", region, i)
			zones = append(zones, ask.Choice[string]{Title: zone, Value: zone})
		}
	}
	zoneList, err := ask.NewSelect("Zone", zones)
	if err != nil {
		log.Fatal(err)
	}
	zone, err := ask.Run(zoneList.WithPageSize(6))
	if err != nil {
		exit(err)
	}

	diskList, err := ask.NewMultiSelect("Extra disks", ask.Choices("ssd-100", "ssd-500", "hdd-2000", "hdd-8000"))
	if err != nil {
		log.Fatal(err)
	}
	disks, err := ask.Run(diskList.WithMax(2))
	if err != nil {
		exit(err)
	}

	fmt.Printf("%s (%d GiB) in %s", size.name, size.ram, zone)
	if len(disks) > 0 {
		fmt.Printf(" with %s", strings.Join(disks, ", "))
	}
	fmt.Println()
}

func exit(err error) {
	if errors.Is(err, ask.ErrCanceled) {
		fmt.Println("Canceled.")
		os.Exit(1)
	}
	log.Fatal(err)
}
