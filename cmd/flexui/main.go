// Package main provides the CLI tool for flexui window descriptions.
//
// Usage:
//
//	flexui check [path...]    Build descriptions and report errors
//	flexui layout <file>      Print the rectangle of every widget
//	flexui run <file>         Show a description in the terminal
//	flexui help               Show help
//
// Examples:
//
//	flexui check ./windows         Check every .yaml file in a directory
//	flexui layout -w 300 demo.yaml Lay out a window 300 pixels wide
//	flexui run demo.yaml           Try a window interactively
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `flexui - declarative windows from YAML descriptions

Usage:
  flexui <command> [options] [path...]

Commands:
  check       Build descriptions and report errors
  layout      Print the rectangle of every widget in a description
  run         Show a description in the terminal
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output (check)
  -w, -h      Window size in pixels (layout)
  --fit       Size the window to the terminal (layout)
  --tab N     Select tab N before printing (layout)

Examples:
  flexui check ./windows            Check every description in a directory
  flexui check -v demo.yaml         Check one file and list what was built
  flexui layout demo.yaml           Print widget rectangles at the initial size
  flexui layout --fit demo.yaml     Print widget rectangles at terminal size
  flexui run demo.yaml              Run with the terminal host

Set FLEXUI_DEBUG=/path/to/log to write a debug log.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "check":
		if err := runCheck(os.Stdout, os.Stderr, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "layout":
		if err := runLayout(os.Stdout, args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "run":
		if err := runRun(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("flexui version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
