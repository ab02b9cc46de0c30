package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/lynx-lang/lynx/pkg/compiler/lexer"
	"github.com/lynx-lang/lynx/pkg/diagnostics"
)

const historyFile = ".lynx_history"

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: lynx [scan|repl] ...")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "scan":
		runScan()
	case "repl":
		runREPL()
	default:
		fmt.Println("Unknown command:", os.Args[1])
		os.Exit(1)
	}
}

func runScan() {
	scanCmd := flag.NewFlagSet("scan", flag.ExitOnError)
	showTokens := scanCmd.Bool("tokens", false, "Print the token stream")
	colorize := scanCmd.Bool("color", false, "Colorize the token stream")

	if len(os.Args) < 3 {
		fmt.Println("Usage: lynx scan <source.lynx> [-tokens] [-color]")
		os.Exit(1)
	}
	scriptPath := os.Args[2]
	scanCmd.Parse(os.Args[3:])

	src, err := os.ReadFile(scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	// The lexer expects normalized line endings; collapse CRLF here, at the
	// I/O boundary, so that byte offsets in diagnostics match what the core
	// actually scanned.
	text := strings.ReplaceAll(string(src), "\r\n", "\n")

	reporter := diagnostics.NewReporter(text, os.Stderr)
	tokens, err := lexer.Scan(text, reporter)

	if *showTokens || *colorize {
		printTokens(os.Stdout, tokens, *colorize)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runREPL() {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		rl.ReadHistory(f)
		f.Close()
	}

	fmt.Println("Lynx scanner REPL. Ctrl+C cancels input, Ctrl+D exits.")
	for {
		input, err := rl.Prompt("==> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			break // io.EOF or a closed terminal
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		rl.AppendHistory(input)

		reporter := diagnostics.NewReporter(input, os.Stderr)
		tokens, err := lexer.Scan(input, reporter)
		printTokens(os.Stdout, tokens, true)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	fmt.Println()

	if f, err := os.Create(histPath); err == nil {
		rl.WriteHistory(f)
		f.Close()
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), historyFile)
	}
	return filepath.Join(home, historyFile)
}

var (
	keywordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	literalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	operatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// printTokens dumps one token per line with its span, the debug view of the
// scanner's output.
func printTokens(out io.Writer, tokens []lexer.Token, colorize bool) {
	for _, tok := range tokens {
		line := fmt.Sprintf("%4d+%-3d %s", tok.Span.Offset, tok.Span.Length, tok)
		if colorize {
			line = styleFor(tok.Kind).Render(line)
		}
		fmt.Fprintln(out, line)
	}
}

func styleFor(kind lexer.Kind) lipgloss.Style {
	switch {
	case kind.IsKeyword():
		return keywordStyle
	case kind.IsLiteral():
		return literalStyle
	case kind == lexer.KindEOF:
		return lipgloss.NewStyle()
	default:
		return operatorStyle
	}
}
