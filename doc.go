// Package ask provides typed interactive prompts for the terminal.
//
// A prompt is a widget: a small state machine that consumes normalized
// key events and produces a validated, typed value. The package ships
// seven widget kinds — Confirm, Toggle, Text, Number, Password, Select,
// and MultiSelect — plus an acknowledgment Message, all sharing the same
// contract, and a driver that runs any of them either as a blocking call
// or step by step inside an external event loop.
//
// Key Features:
//
//   - Typed results: bool, string, any integer or float type, a choice
//     value, or a set of choice values — no string re-parsing
//   - Live validation: rules run on every edit, block submission, and
//     render an inline error banner
//   - One state machine per widget serving both the blocking and the
//     suspend/resume execution modes identically
//   - Cross-platform terminal handling (Windows, macOS, Linux)
//   - Context support for timeouts and cancellation
//   - Pluggable event sources and renderers for testing and embedding
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/askkit/ask"
//	)
//
//	func main() {
//		name, err := ask.Run(ask.NewText("Project name").WithPlaceholder("my-project"))
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		ok, err := ask.Run(ask.NewConfirm("Create " + name + "?").WithDefault(true))
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(name, ok)
//	}
//
// Widgets compose: run them in sequence to build a form. The driver
// guarantees only one widget owns the terminal at a time.
//
// Selection Prompts:
//
//	region, err := ask.NewSelect("Region", []ask.Choice[string]{
//		{Title: "eu-west", Value: "eu-west-1", Description: "Ireland"},
//		{Title: "us-east", Value: "us-east-1", Description: "Virginia"},
//		{Title: "ap-east", Value: "ap-east-1", Disabled: true},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	picked, err := ask.Run(region)
//
// Select and MultiSelect are generic over the choice value type, so the
// result is whatever type the choices carry. Up/Down wrap around the
// list, Left/Right jump by page, and Space toggles entries of a
// MultiSelect.
//
// Key Handling:
//
//   - Enter: submit (blocked while the current value fails validation)
//   - Esc / Ctrl+C: cancel, surfacing ErrCanceled
//   - Arrow keys: move the cursor or the list highlight
//   - Ctrl+A / Home, Ctrl+E / End: jump within the input line
//   - Backspace / Delete: edit around the cursor
//   - y / n: answer a Confirm in one keystroke
//
// Embedding:
//
// Run and RunContext block the calling goroutine. To drive a prompt from
// an existing event loop, use a Session, which performs one
// event→mutate→draw cycle per Step; the asktea and asktcell subpackages
// adapt widgets to bubbletea programs and tcell screens on top of it.
//
// Error Handling:
//
//   - ask.ErrCanceled: the user canceled the prompt
//   - ask.ErrNoChoices: a select widget was built with no options
//   - ask.ErrNotTerminal: no interactive terminal is attached
//   - context errors pass through from RunContext unchanged
//
// Thread Safety:
//
// Widgets and sessions are not thread-safe; drive each interaction from
// a single goroutine. Canceling via context from another goroutine is
// safe.
package ask
