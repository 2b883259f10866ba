// Command tarn-ast parses Tarn expressions and prints the resulting tree.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/tarn-lang/tarn/internal/ast"
	"github.com/tarn-lang/tarn/internal/cli"
	"github.com/tarn-lang/tarn/internal/lexer"
	"github.com/tarn-lang/tarn/internal/parser"
	"github.com/tarn-lang/tarn/internal/printer"
)

func main() {
	var (
		showVersion    = flag.Bool("version", false, "show version information")
		jsonOutput     = flag.Bool("json", false, "print the tree as JSON (or version info with --version)")
		evalStr        = flag.String("eval", "", "parse expression from the command line")
		treeOutput     = flag.Bool("tree", false, "print the parenthesized tree form instead of pretty output")
		watchMode      = flag.Bool("watch", false, "watch a file and re-parse on change")
		noColor        = flag.Bool("no-color", false, "disable colored diagnostics")
		requireVersion = flag.String("require-version", "", "fail unless the tool version satisfies this semver constraint")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [FILE...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Parse Tarn expressions and print the resulting tree.\n\n")
		fmt.Fprintf(os.Stderr, "Reads from stdin when no file or --eval expression is given.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  %s --eval \"1 + 2 * 3\"     # Parse a one-off expression\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --json --eval \"1 + 2\"  # Emit the tree as JSON\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s a.tarn b.tarn          # Parse files concurrently\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --watch expr.tarn      # Re-parse on every save\n", os.Args[0])
	}

	flag.Parse()

	if *noColor {
		cli.DisableColor()
	}

	if *showVersion {
		cli.PrintVersion("Tarn AST", *jsonOutput)
		os.Exit(0)
	}

	if *requireVersion != "" {
		if err := cli.CheckVersionConstraint(*requireVersion); err != nil {
			cli.ExitWithError("%v", err)
		}
	}

	if *jsonOutput && *treeOutput {
		cli.ExitWithError("--json and --tree are mutually exclusive")
	}

	render := printer.Print
	switch {
	case *jsonOutput:
		render = func(expr ast.Expr) string {
			out, err := printer.PrintJSON(expr)
			if err != nil {
				cli.ExitWithError("failed to encode tree as JSON: %v", err)
			}
			return out
		}
	case *treeOutput:
		render = func(expr ast.Expr) string { return expr.String() }
	}

	switch {
	case *evalStr != "":
		out, err := parseSource("", *evalStr, render)
		if err != nil {
			cli.ExitWithError("%v", err)
		}
		fmt.Println(out)
	case *watchMode:
		if flag.NArg() != 1 {
			cli.ExitWithError("--watch requires exactly one file argument")
		}
		if err := watchFile(flag.Arg(0), render); err != nil {
			cli.ExitWithError("%v", err)
		}
	case flag.NArg() > 0:
		if err := parseFiles(flag.Args(), render); err != nil {
			cli.PrintError(err)
			os.Exit(1)
		}
	default:
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			cli.ExitWithError("failed to read stdin: %v", err)
		}
		out, err := parseSource("<stdin>", string(source), render)
		if err != nil {
			cli.ExitWithError("%v", err)
		}
		fmt.Println(out)
	}
}

// parseSource scans and parses one expression source, returning the
// rendered tree.
func parseSource(filename, source string, render func(ast.Expr) string) (string, error) {
	tokens, err := lexer.NewWithFilename(source, filename).ScanAll()
	if err != nil {
		return "", err
	}
	expr, err := parser.Parse(tokens)
	if err != nil {
		return "", err
	}
	return render(expr), nil
}

// parseFiles parses each file in its own goroutine. Each file gets its
// own lexer and parser; a single parse is always one call stack.
func parseFiles(paths []string, render func(ast.Expr) string) error {
	results := make([]string, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			out, err := parseSource(path, string(source), render)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		if len(paths) > 1 {
			fmt.Printf("%s: %s\n", path, results[i])
		} else {
			fmt.Println(results[i])
		}
	}
	return nil
}

// watchFile re-parses the file on every write until interrupted.
func watchFile(path string, render func(ast.Expr) string) error {
	parseOnce := func() {
		source, err := os.ReadFile(path)
		if err != nil {
			cli.PrintError(err)
			return
		}
		out, err := parseSource(path, string(source), render)
		if err != nil {
			cli.PrintError(err)
			return
		}
		fmt.Println(out)
	}

	parseOnce()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				parseOnce()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cli.PrintError(err)
		}
	}
}
