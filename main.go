// Command screenforge builds mobile screens from positioned UI elements and
// generates React Native source for them.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	command := "tui"
	args := os.Args[1:]
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	var err error
	switch command {
	case "tui":
		err = tuiCommand(args)
	case "gen":
		err = genCommand(args)
	case "watch":
		err = watchCommand(args)
	case "serve":
		err = serveCommand(args)
	case "version":
		fmt.Printf("screenforge version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("screenforge - design mobile screens, get React Native code")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  screenforge [tui] [manifest]                      Open the terminal editor")
	fmt.Println("  screenforge gen [-o file] [-png file] <manifest>  Generate code from a manifest")
	fmt.Println("  screenforge watch [-o file] [-png file] <manifest>  Regenerate on every change")
	fmt.Println("  screenforge serve [-addr host:port]               Start the HTTP API")
	fmt.Println("  screenforge version                               Show version")
	fmt.Println("  screenforge help                                  Show this help")
	fmt.Println()
	fmt.Println("Manifests are .yaml, .yml or .json files listing elements:")
	fmt.Println()
	fmt.Println("  elements:")
	fmt.Println("    - kind: button")
	fmt.Println("      content: Sign in")
	fmt.Println("      style: { x: 24, y: 400, width: 327 }")
	fmt.Println()
	fmt.Println("Settings are read from ~/.screenforge.yaml (override with SCREENFORGE_CONFIG).")
}
