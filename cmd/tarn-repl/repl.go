package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tarn-lang/tarn/internal/cli"
	"github.com/tarn-lang/tarn/internal/lexer"
	"github.com/tarn-lang/tarn/internal/parser"
	"github.com/tarn-lang/tarn/internal/printer"
)

const prompt = "tarn> "

// REPL reads expressions line by line, parses each one, and prints the
// resulting tree.
type REPL struct {
	tree bool
}

// NewREPL creates a REPL instance.
func NewREPL(tree bool) *REPL {
	return &REPL{tree: tree}
}

// PrintWelcome prints the interactive banner.
func (r *REPL) PrintWelcome() {
	fmt.Printf("Tarn expression parser v%s\n", cli.Version)
	fmt.Println("Type an expression, :help for commands, or :quit to exit.")
}

// Render scans, parses, and renders one expression source.
func (r *REPL) Render(source string) (string, error) {
	tokens, err := lexer.Scan(source)
	if err != nil {
		return "", err
	}
	expr, err := parser.Parse(tokens)
	if err != nil {
		return "", err
	}
	if r.tree {
		return expr.String(), nil
	}
	return printer.Print(expr), nil
}

// Run drives the read-parse-print loop until EOF or :quit.
func (r *REPL) Run(noPrompt bool) {
	in := bufio.NewScanner(os.Stdin)
	for {
		if !noPrompt {
			fmt.Print(prompt)
		}
		if !in.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if r.handleCommand(line) {
				return
			}
			continue
		}
		result, err := r.Render(line)
		if err != nil {
			cli.PrintError(err)
			continue
		}
		fmt.Println(result)
	}
}

// handleCommand processes a :command line, returning true on quit.
func (r *REPL) handleCommand(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		fmt.Println("Goodbye!")
		return true
	case ":help", ":h":
		fmt.Println("Commands:")
		fmt.Println("  :help, :h          Show this help")
		fmt.Println("  :quit, :q, :exit   Exit")
		fmt.Println("  :tree on|off       Toggle parenthesized tree output")
	case ":tree":
		if len(fields) == 2 && (fields[1] == "on" || fields[1] == "off") {
			r.tree = fields[1] == "on"
			fmt.Printf("tree output %s\n", fields[1])
		} else {
			fmt.Println("usage: :tree on|off")
		}
	default:
		fmt.Printf("unknown command %s (try :help)\n", fields[0])
	}
	return false
}
