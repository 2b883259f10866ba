// Command tarn-repl is an interactive read-parse-print loop for Tarn
// expressions.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tarn-lang/tarn/internal/cli"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		evalStr     = flag.String("eval", "", "parse expression and exit")
		treeOutput  = flag.Bool("tree", false, "print the parenthesized tree form")
		noPrompt    = flag.Bool("no-prompt", false, "disable interactive prompt")
		noColor     = flag.Bool("no-color", false, "disable colored diagnostics")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Tarn interactive expression parser (read-parse-print loop).\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nREPL COMMANDS:\n")
		fmt.Fprintf(os.Stderr, "  :help, :h          Show help\n")
		fmt.Fprintf(os.Stderr, "  :quit, :q, :exit   Exit\n")
		fmt.Fprintf(os.Stderr, "  :tree on|off       Toggle parenthesized tree output\n")
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  %s                     # Start interactive loop\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --eval \"2 + 3\"      # Parse one expression\n", os.Args[0])
	}

	flag.Parse()

	if *noColor {
		cli.DisableColor()
	}

	if *showVersion {
		cli.PrintVersion("Tarn REPL", *jsonOutput)
		os.Exit(0)
	}

	repl := NewREPL(*treeOutput)

	if *evalStr != "" {
		result, err := repl.Render(*evalStr)
		if err != nil {
			cli.ExitWithError("%v", err)
		}
		fmt.Println(result)
		os.Exit(0)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	if !*noPrompt {
		repl.PrintWelcome()
	}

	repl.Run(*noPrompt)
}
